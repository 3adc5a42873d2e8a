package repository

// CacheRepository memoiza resultados serializados entre ejecuciones
// idénticas de la misma sesión.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
