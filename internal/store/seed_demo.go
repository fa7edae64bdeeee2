// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Paguzzo/lingua-lore-sub000/internal/model"
	"github.com/Paguzzo/lingua-lore-sub000/internal/util"
)

// SeedDemo creates demo content for showcasing the publishing workflow.
// This is called after the regular Seed() when LINGUALORE_DEMO_MODE=true.
func SeedDemo(ctx context.Context, s Store) error {
	if os.Getenv("LINGUALORE_DEMO_MODE") != "true" {
		return nil
	}

	slog.Info("seeding demo content")

	if err := seedDemoPosts(ctx, s); err != nil {
		return fmt.Errorf("seeding demo posts: %w", err)
	}

	slog.Info("demo content seeded successfully")
	return nil
}

// demoPost represents a demo post with its metadata.
type demoPost struct {
	Title        string
	Excerpt      string
	Content      string
	CategorySlug string
	Featured     bool
	ReadTime     int64
}

func seedDemoPosts(ctx context.Context, s Store) error {
	existing, err := s.ListPosts(ctx, PostFilter{Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		slog.Info("posts already exist, skipping demo posts")
		return nil
	}

	categoryIDs := make(map[string]string)
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return err
	}
	for i := range categories {
		categoryIDs[categories[i].Slug] = categories[i].ID
	}

	now := time.Now()
	posts := getDemoPosts()

	for i, p := range posts {
		post := model.Post{
			Title:       p.Title,
			Slug:        util.Slugify(p.Title),
			Content:     p.Content,
			Excerpt:     p.Excerpt,
			AuthorName:  DefaultAdminName,
			IsPublished: true,
			IsFeatured:  p.Featured,
			PublishedAt: sql.NullTime{
				Time:  now.Add(-time.Duration(len(posts)-i) * 24 * time.Hour),
				Valid: true,
			},
			ReadTime:        p.ReadTime,
			MetaTitle:       util.NullStringFromValue(p.Title),
			MetaDescription: util.NullStringFromValue(p.Excerpt),
			OgTitle:         util.NullStringFromValue(p.Title),
			OgDescription:   util.NullStringFromValue(p.Excerpt),
		}
		if catID, ok := categoryIDs[p.CategorySlug]; ok {
			post.CategoryID = util.NullStringFromValue(catID)
		}

		created, err := s.CreatePost(ctx, &post)
		if err != nil {
			return fmt.Errorf("creating post %s: %w", post.Slug, err)
		}

		// A handful of page views so the analytics log is not empty.
		for n := 0; n < 3; n++ {
			_, err := s.CreateAnalyticsEvent(ctx, &model.AnalyticsEvent{
				EventType: model.EventTypePageView,
				EventData: fmt.Sprintf(`{"slug":%q}`, created.Slug),
				PostID:    util.NullStringFromValue(created.ID),
			})
			if err != nil {
				return fmt.Errorf("creating demo event for %s: %w", created.Slug, err)
			}
		}

		if i == 0 {
			if err := seedDemoPromos(ctx, s, created.ID); err != nil {
				return err
			}
		}
	}

	slog.Info("seeded demo posts", "count", len(posts))
	return nil
}

func seedDemoPromos(ctx context.Context, s Store, postID string) error {
	_, err := s.CreateAffiliateLink(ctx, &model.AffiliateLink{
		PostID:      util.NullStringFromValue(postID),
		Title:       "Recommended grammar workbook",
		URL:         "https://example.com/grammar-workbook",
		Description: util.NullStringFromValue("The workbook referenced throughout this article"),
		Position:    sql.NullInt64{Int64: 1, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("creating demo affiliate link: %w", err)
	}

	_, err = s.CreateCallToAction(ctx, &model.CallToAction{
		PostID:      util.NullStringFromValue(postID),
		Title:       "Join the newsletter",
		Description: util.NullStringFromValue("One lesson in your inbox every week"),
		ButtonText:  "Subscribe",
		ButtonURL:   "https://example.com/newsletter",
		Position:    sql.NullInt64{Int64: 1, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("creating demo call to action: %w", err)
	}
	return nil
}

func getDemoPosts() []demoPost {
	return []demoPost{
		{
			Title:        "Mastering the Subjunctive Mood",
			Excerpt:      "The subjunctive scares most learners, but it follows a small set of patterns you can internalize in a week.",
			Content:      getSubjunctiveBody(),
			CategorySlug: "grammar",
			Featured:     true,
			ReadTime:     4,
		},
		{
			Title:        "Fifty Food Idioms Worth Knowing",
			Excerpt:      "From spilling the beans to going bananas, food idioms show up everywhere in everyday speech.",
			Content:      getFoodIdiomsBody(),
			CategorySlug: "vocabulary",
			ReadTime:     6,
		},
		{
			Title:        "Why Minimal Pairs Fix Your Listening",
			Excerpt:      "Ship or sheep? Training your ear on minimal pairs is the fastest way to sharpen both listening and pronunciation.",
			Content:      getMinimalPairsBody(),
			CategorySlug: "pronunciation",
			ReadTime:     3,
		},
		{
			Title:        "Ordering Coffee Like a Local",
			Excerpt:      "Menus, counter etiquette and the small talk that comes with your cup.",
			Content:      getCoffeeBody(),
			CategorySlug: "culture",
			ReadTime:     3,
		},
	}
}

// Post content helpers

func getSubjunctiveBody() string {
	return `<p class="lead">The subjunctive scares most learners, but it follows a small set of patterns you can internalize in a week.</p>

<h2>When the Subjunctive Appears</h2>
<p>The subjunctive marks wishes, doubts and hypotheticals rather than facts. Three triggers cover the vast majority of cases:</p>
<ul>
<li>Expressions of desire and influence</li>
<li>Expressions of doubt and denial</li>
<li>Certain conjunctions introducing conditions</li>
</ul>

<h2>A Practice Routine</h2>
<p>Pick one trigger per day. Write five of your own sentences with it, say them aloud, then check them the following morning. Spaced repetition beats cramming for mood selection because the choice has to become automatic.</p>

<h2>Common Mistakes</h2>
<p>Learners overuse the subjunctive once they discover it. Remember that verbs of certainty take the indicative. When in doubt, ask whether the speaker is asserting the statement as real.</p>`
}

func getFoodIdiomsBody() string {
	return `<p class="lead">From spilling the beans to going bananas, food idioms show up everywhere in everyday speech.</p>

<h2>Why Food?</h2>
<p>Every culture cooks, so food vocabulary is old, shared and heavily reused for metaphor. That makes these idioms both common and surprisingly translatable.</p>

<h2>Starter Set</h2>
<ul>
<li><strong>Spill the beans</strong> - reveal a secret</li>
<li><strong>Piece of cake</strong> - something very easy</li>
<li><strong>Go bananas</strong> - become very excited or angry</li>
<li><strong>Bring home the bacon</strong> - earn the household income</li>
<li><strong>In a nutshell</strong> - summarized briefly</li>
</ul>

<h2>How to Learn Them</h2>
<p>Group idioms by image rather than alphabetically. Your memory stores pictures better than word lists, and a shared image gives you a retrieval hook for the whole group.</p>`
}

func getMinimalPairsBody() string {
	return `<p class="lead">Ship or sheep? Training your ear on minimal pairs is the fastest way to sharpen both listening and pronunciation.</p>

<h2>What Is a Minimal Pair?</h2>
<p>Two words that differ by exactly one sound. If you cannot hear the difference, you will not produce it either. Perception comes first.</p>

<h2>A Ten Minute Drill</h2>
<ol>
<li>Choose one contrast that troubles you</li>
<li>Listen to ten recorded pairs with your eyes closed</li>
<li>Guess which word you heard, then check</li>
<li>Record yourself producing both and compare</li>
</ol>

<h2>Tracking Progress</h2>
<p>Keep a simple score per contrast. Most learners reach reliable discrimination within two weeks of daily drills, and production follows a few weeks later.</p>`
}

func getCoffeeBody() string {
	return `<p class="lead">Menus, counter etiquette and the small talk that comes with your cup.</p>

<h2>Reading the Menu</h2>
<p>Coffee menus are a dialect of their own. Sizes, milk options and brewing methods stack into compact noun phrases that no textbook teaches. Start by learning the five drinks the cafe sells most.</p>

<h2>At the Counter</h2>
<p>Orders follow a fixed script: greeting, drink, size, milk, name. Scripts are a gift to learners because you can rehearse them completely before you ever step inside.</p>

<h2>The Small Talk</h2>
<p>Regulars get two extra sentences of conversation with their order. Weather, the queue and the pastry case are always safe topics. Treat each visit as a tiny speaking lesson that costs the price of a coffee.</p>`
}
