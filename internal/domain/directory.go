package domain

import "time"

// Department справочник отделов - подставляется в форму бронирования
type Department struct {
	ID           int64
	Name         string
	Organization string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Building справочник зданий
type Building struct {
	ID   int64
	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Equipment справочник оборудования переговорных
type Equipment struct {
	ID   int64
	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}
