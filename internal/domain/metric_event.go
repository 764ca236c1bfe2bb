package domain

// Действия событий метрик.
const (
	MetricActionRating = "rating"
	MetricActionVotes  = "votes"
)

// MetricEvent — событие изменения метрик товара (из Kafka или HTTP).
// Значения абсолютные, не дельты: отправитель сам вычисляет новое значение
// счётчика перед отправкой.
type MetricEvent struct {
	ProductID string `json:"product_id"`
	Action    string `json:"action"` // rating | votes
	Rating    int    `json:"rating,omitempty"`
	Likes     int    `json:"likes,omitempty"`
	Dislikes  int    `json:"dislikes,omitempty"`
}
