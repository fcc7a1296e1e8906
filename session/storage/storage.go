// Package storage provides the durable key/value store behind the session
// store: three string-keyed entries with synchronous get/set/remove
// semantics. Backends differ only in where the entries live.
package storage

// Keys for the persisted session entries.
const (
	KeyToken        = "token"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
)

// Backend is a synchronous string key/value store. Get returns
// errors.ErrNotFound for an absent key; Delete of an absent key is a
// no-op.
type Backend interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
