package constant

// Storage keys for the persistent session store. The rest of the
// application reads and writes session state through these exact keys.
const (
	StorageKeyAccess  = "access"
	StorageKeyRefresh = "refresh"
	StorageKeyUser    = "user"
)

const (
	HeaderAuthorization = "Authorization"
	BearerScheme        = "Bearer "
)

const (
	SessionFileName = "session.json"
	CartFileName    = "cart.json"
)
