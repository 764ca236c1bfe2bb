package domain

// Справочные коллекции каталога. Все читаются через зеркальный кэш
// (hash-зеркало «{collection}:{id}») с ленивым прогревом из Postgres.

// Category — категория товара; chiptags — быстрые фильтры категории.
type Category struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Chiptags []string `json:"chiptags"`
}

// Platform — игровая платформа.
type Platform struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Tag — произвольная метка товара.
type Tag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Chiptag — быстрый фильтр; самостоятельная коллекция, категории ссылаются
// на неё по названиям в Category.Chiptags.
type Chiptag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
