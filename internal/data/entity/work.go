package entity

type Work struct {
	Base
	Title       string `db:"title"`
	Category    string `db:"category"`
	VideoURL    string `db:"video_url"`
	Description string `db:"description"`
}
