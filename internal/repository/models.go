package repository

// Models lists every persisted model for schema migration, parents first so
// foreign keys resolve.
func Models() []interface{} {
	return []interface{}{
		&ownerModel{},
		&cinemaModel{},
		&filmModel{},
		&seanceModel{},
	}
}
