package entities

import "time"

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:80;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category is a book genre. The label column keeps its historical name "types".
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Types     string    `gorm:"uniqueIndex;size:20;not null" json:"types"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book references exactly one Author and one Category. Both foreign keys are
// NOT NULL and RESTRICT deletes of the referenced row.
type Book struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"index;size:120;not null" json:"name"`
	Price      float64   `gorm:"index;not null" json:"price"`
	Resume     string    `gorm:"type:text" json:"resume"`
	CategoryID uint      `gorm:"index;not null" json:"category_id"`
	AuthorID   uint      `gorm:"index;not null" json:"author_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Author     *Author   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"author,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AuthorSummary is an author row with the number of books it owns.
type AuthorSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BookCount int64  `json:"book_count"`
}

// BookRef is the short form of a book used inside author details.
type BookRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type AuthorDetail struct {
	ID    uint      `json:"id"`
	Name  string    `json:"name"`
	Books []BookRef `json:"books"`
}

// CategorySummary exposes the category label as "name".
type CategorySummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BookCount int64  `json:"book_count"`
}

// BookListing is the display form of a book with its relations resolved to names.
type BookListing struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Author   string  `json:"author"`
	Category string  `json:"category"`
}
