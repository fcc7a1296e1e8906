package permissions

// Permission codes recognised by the backend. The ADMIN role bypasses all
// of them.
const (
	UsuarioVer      = "USUARIO_VER"
	UsuarioCrear    = "USUARIO_CREAR"
	UsuarioEditar   = "USUARIO_EDITAR"
	UsuarioEliminar = "USUARIO_ELIMINAR"

	RolVer      = "ROL_VER"
	RolCrear    = "ROL_CREAR"
	RolEditar   = "ROL_EDITAR"
	RolEliminar = "ROL_ELIMINAR"

	PermisoVer    = "PERMISO_VER"
	PermisoCrear  = "PERMISO_CREAR"
	PermisoEditar = "PERMISO_EDITAR"

	ClienteVer      = "CLIENTE_VER"
	ClienteCrear    = "CLIENTE_CREAR"
	ClienteEditar   = "CLIENTE_EDITAR"
	ClienteEliminar = "CLIENTE_ELIMINAR"

	ProductoVer      = "PRODUCTO_VER"
	ProductoCrear    = "PRODUCTO_CREAR"
	ProductoEditar   = "PRODUCTO_EDITAR"
	ProductoEliminar = "PRODUCTO_ELIMINAR"

	ServicioVer      = "SERVICIO_VER"
	ServicioCrear    = "SERVICIO_CREAR"
	ServicioEditar   = "SERVICIO_EDITAR"
	ServicioEliminar = "SERVICIO_ELIMINAR"

	SucursalVer      = "SUCURSAL_VER"
	SucursalCrear    = "SUCURSAL_CREAR"
	SucursalEditar   = "SUCURSAL_EDITAR"
	SucursalEliminar = "SUCURSAL_ELIMINAR"

	VentaVer      = "VENTA_VER"
	VentaCrear    = "VENTA_CREAR"
	VentaEliminar = "VENTA_ELIMINAR"

	ConfigVer    = "CONFIG_VER"
	ConfigEditar = "CONFIG_EDITAR"

	ContabilidadVer = "CONTABILIDAD_VER"
)
