package domain

// Review holds a single review keyed by the (reviewer, reviewee) pair.
// Submitting a review for a pair that already has one replaces it.
type Review struct {
	Reviewer User   `json:"reviewer"`
	Reviewee User   `json:"reviewee"`
	Text     string `json:"text"`
}
