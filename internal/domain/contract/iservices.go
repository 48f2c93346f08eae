package contract

// IUUIDGenerator produces document identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}

// IHasher checks secrets against stored hashes.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}
