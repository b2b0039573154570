package service

import (
	"encoding/json"
	"math/rand"
	"sync"

	"github.com/clipforge/clip-shortener/internal/core/domain"
)

const (
	clipsPerVideo   = 3
	hashtagsPerClip = 4

	minVideoDuration = 120 // seconds
	maxVideoDuration = 600
	minClipLength    = 15
	maxClipLength    = 60
)

// The marketing copy is sampled from small fixed tables; there is no real
// inference behind it.
var clipTitles = []string{
	"You Won't Believe What Happens Next",
	"This Changed Everything For Me",
	"The Secret Nobody Talks About",
	"Watch This Before It's Too Late",
	"The Moment Everyone Is Sharing",
	"This Is Why You're Doing It Wrong",
	"The One Trick That Actually Works",
	"What They Don't Want You To Know",
}

var hashtagPool = []string{
	"#viral", "#shorts", "#trending", "#fyp", "#mustwatch",
	"#contentcreator", "#videooftheday", "#reels", "#explore",
	"#creator", "#clips", "#foryou",
}

var clipDescriptions = []string{
	"This clip captures the most engaging moment of the video. Perfect for social media!",
	"A highlight your audience will want to share. Post it while the topic is hot.",
	"Short, punchy and straight to the point. Ideal for reels and shorts.",
	"The key takeaway from the full video, condensed into one shareable moment.",
	"An attention-grabbing segment that hooks viewers in the first three seconds.",
}

var videoTitles = []string{
	"My Journey So Far",
	"Everything You Need To Know",
	"A Day In The Life",
	"The Complete Guide",
	"Behind The Scenes",
	"Top Tips And Tricks",
}

// clipGenerator produces mock videos and clips by random sampling. It is
// safe for concurrent use; rand.Rand itself is not.
type clipGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newClipGenerator(seed int64) *clipGenerator {
	return &clipGenerator{rnd: rand.New(rand.NewSource(seed))}
}

// video fabricates a video record with a random duration and a sampled title.
func (g *clipGenerator) video() (title string, duration float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	title = videoTitles[g.rnd.Intn(len(videoTitles))]
	duration = float64(minVideoDuration + g.rnd.Intn(maxVideoDuration-minVideoDuration+1))
	return title, duration
}

// clips fabricates n clip suggestions with boundaries inside [0, duration].
// The returned clips carry no identifiers; the repository assigns those.
func (g *clipGenerator) clips(duration float64, n int) []domain.Clip {
	g.mu.Lock()
	defer g.mu.Unlock()

	clips := make([]domain.Clip, 0, n)
	for i := 0; i < n; i++ {
		length := float64(minClipLength + g.rnd.Intn(maxClipLength-minClipLength+1))
		if length > duration {
			length = duration
		}
		start := g.rnd.Float64() * (duration - length)

		clips = append(clips, domain.Clip{
			StartTime:       start,
			EndTime:         start + length,
			TitleSuggestion: clipTitles[g.rnd.Intn(len(clipTitles))],
			Hashtags:        g.hashtags(),
			Description:     clipDescriptions[g.rnd.Intn(len(clipDescriptions))],
		})
	}
	return clips
}

// hashtags samples hashtagsPerClip distinct tags and returns them as a
// JSON-encoded array; the wire format keeps the encoded string as-is.
func (g *clipGenerator) hashtags() string {
	picked := make([]string, 0, hashtagsPerClip)
	for _, idx := range g.rnd.Perm(len(hashtagPool))[:hashtagsPerClip] {
		picked = append(picked, hashtagPool[idx])
	}
	encoded, _ := json.Marshal(picked)
	return string(encoded)
}
