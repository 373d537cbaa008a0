package ai

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"trendpilot/internal/model"
)

// TemplateGenerator is the offline degradation path: it renders one of four
// fixed template shapes from the bundle's keywords and headlines. It never
// fails and never needs network access.
type TemplateGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewTemplate creates a template generator with its own RNG. Tests pass a
// fixed seed for deterministic selection.
func NewTemplate(seed int64) *TemplateGenerator {
	return &TemplateGenerator{rng: rand.New(rand.NewSource(seed))}
}

type templateFunc func(keyword, headline string) string

func (t *TemplateGenerator) Generate(_ context.Context, genre, platform string, bundle *model.TrendBundle) (string, error) {
	keywords, headlines := templateInputs(bundle, genre)

	kw := keywords[0]
	headline := kw + " latest developments"
	if len(headlines) > 0 {
		headline = headlines[0]
	}

	templates := []templateFunc{
		listPost,
		opinionPost,
		tipsPost,
		questionPost,
	}
	t.mu.Lock()
	pick := templates[t.rng.Intn(len(templates))]
	t.mu.Unlock()
	return pick(kw, headline), nil
}

// templateInputs derives the keyword and headline pools from the bundle,
// falling back to the bare genre when the bundle is empty or absent.
func templateInputs(bundle *model.TrendBundle, genre string) (keywords, headlines []string) {
	if bundle != nil {
		keywords = bundle.TopKeywords
		if len(keywords) > 5 {
			keywords = keywords[:5]
		}
		for _, it := range bundle.News {
			if it.Title != "" {
				headlines = append(headlines, it.Title)
			}
		}
		for _, it := range bundle.Trending {
			if it.Title != "" {
				headlines = append(headlines, it.Title)
			}
		}
	}
	if len(keywords) == 0 {
		kw := genre
		if kw == "" {
			kw = "technology"
		}
		keywords = []string{kw}
	}
	return keywords, headlines
}

func hashtag(keyword string) string {
	return "#" + strings.ReplaceAll(keyword, " ", "")
}

func listPost(keyword, _ string) string {
	return fmt.Sprintf(
		"🔥 Everything people are saying about %q right now\n\n"+
			"The highlights 👇\n"+
			"1. Search interest is spiking\n"+
			"2. Social feeds are full of it\n"+
			"3. This is only going to get bigger\n\n"+
			"You'll want to be early on this one.\n\n"+
			"%s #trending #2026",
		keyword, hashtag(keyword))
}

func opinionPost(keyword, headline string) string {
	h := []rune(headline)
	if len(h) > 40 {
		h = h[:40]
	}
	return fmt.Sprintf(
		"💡 %q\n\n"+
			"This matters far more than the attention it's getting.\n"+
			"Most people haven't noticed yet.\n\n"+
			"Worth a close look before everyone else catches on.\n"+
			"The early movers win this one.\n\n"+
			"%s #news",
		string(h), hashtag(keyword))
}

func tipsPost(keyword, _ string) string {
	return fmt.Sprintf(
		"📌 Three things to know about %s\n\n"+
			"① The landscape is shifting fast\n"+
			"② Early adopters have a clear edge\n"+
			"③ Speed of information is the differentiator\n\n"+
			"\"Too early\" is usually the right time.\n\n"+
			"%s #insights #action",
		keyword, hashtag(keyword))
}

func questionPost(keyword, _ string) string {
	return fmt.Sprintf(
		"🤔 Honest question: what's your take on %q?\n\n"+
			"It's everywhere lately, and I'd love to hear\n"+
			"from people who've actually tried it.\n\n"+
			"The good and the disappointing,\n"+
			"drop it in the replies 🙏\n\n"+
			"%s #discussion",
		keyword, hashtag(keyword))
}
