package catalog

import (
	"fmt"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache(DefaultCacheConfig())

	c.Set("k", []Item{{ID: 1, Title: "The Matrix"}})

	items, ok := c.GetItems("k")
	if !ok {
		t.Fatal("GetItems() miss, want hit")
	}
	if len(items) != 1 || items[0].Title != "The Matrix" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestCache_Miss(t *testing.T) {
	c := NewCache(DefaultCacheConfig())

	if _, ok := c.GetItems("nope"); ok {
		t.Error("GetItems() hit, want miss")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache(CacheConfig{TTL: 10 * time.Millisecond, MaxItems: 10})

	c.Set("k", []Item{{ID: 1}})
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.GetItems("k"); ok {
		t.Error("GetItems() hit after TTL, want miss")
	}
}

func TestCache_TypedGetterRejectsWrongType(t *testing.T) {
	c := NewCache(DefaultCacheConfig())

	c.Set("k", []Item{{ID: 1}})

	if _, ok := c.GetRating("k"); ok {
		t.Error("GetRating() hit on an item list entry, want miss")
	}
}

func TestCache_Bounded(t *testing.T) {
	c := NewCache(CacheConfig{TTL: time.Hour, MaxItems: 10})

	for i := 0; i < 25; i++ {
		c.Set(fmt.Sprintf("k%d", i), []Item{{ID: i}})
	}

	if c.Len() > 10 {
		t.Errorf("Len() = %d, want at most 10", c.Len())
	}
}

func TestCache_Clear(t *testing.T) {
	c := NewCache(DefaultCacheConfig())

	c.Set("a", []Item{{ID: 1}})
	c.Set("b", &RatingRecord{Title: "The Matrix"})
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear(), want 0", c.Len())
	}
}
