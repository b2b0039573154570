package domain

import "time"

const (
	SourceYouTube = "youtube"
	SourceUpload  = "upload"
)

// Video is a processed submission, either a YouTube URL or an uploaded file.
// Duration is mocked; no media is ever decoded.
type Video struct {
	ID        int64     `json:"id" bson:"id"`
	OwnerID   int64     `json:"owner_id" bson:"owner_id"`
	Title     string    `json:"title" bson:"title"`
	Source    string    `json:"source" bson:"source"`
	SourceURL string    `json:"source_url,omitempty" bson:"source_url,omitempty"`
	Filename  string    `json:"filename,omitempty" bson:"filename,omitempty"`
	Duration  float64   `json:"duration" bson:"duration"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Clip is a suggested short segment of a video with generated marketing copy.
// Hashtags holds a JSON-encoded string array; the web client parses it
// client-side, so the encoding is part of the wire contract.
type Clip struct {
	ID              int64   `json:"id" bson:"id"`
	VideoID         int64   `json:"video_id" bson:"video_id"`
	StartTime       float64 `json:"start_time" bson:"start_time"`
	EndTime         float64 `json:"end_time" bson:"end_time"`
	TitleSuggestion string  `json:"title_suggestion" bson:"title_suggestion"`
	Hashtags        string  `json:"hashtags" bson:"hashtags"`
	Description     string  `json:"description" bson:"description"`
}

// ProcessedVideo pairs a video with its generated clips.
type ProcessedVideo struct {
	Video Video  `json:"video"`
	Clips []Clip `json:"clips"`
}
