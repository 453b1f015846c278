package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Stores() StoreRepository
	Orders() OrderRepository
}
