package domain

// Имена сортированных структур индекса ранжирования.
// Один id встречается в каждой структуре не более одного раза;
// score равен последнему записанному значению.
const (
	RankingRating   = "ranking:score"
	RankingLikes    = "ranking:likes"
	RankingDislikes = "ranking:dislikes"
)

// MemberScore — пара (id записи, числовой score) из сортированной структуры.
type MemberScore struct {
	ID    string
	Score float64
}
