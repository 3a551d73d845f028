package models

// ReactionKind names one of the ten fixed reaction counters. Kinds are
// looked up through this enum and the Column mapping only, never by
// building a field name at runtime.
type ReactionKind string

const (
	ReactionHeart ReactionKind = "heart"
	ReactionThumb ReactionKind = "thumb"
	ReactionSmile ReactionKind = "smile"
	ReactionParty ReactionKind = "party"
	ReactionCry   ReactionKind = "cry"
	ReactionWow   ReactionKind = "wow"
	ReactionAngry ReactionKind = "angry"
	ReactionLove  ReactionKind = "love"
	ReactionLaugh ReactionKind = "laugh"
	ReactionPray  ReactionKind = "pray"
)

// AllReactionKinds lists every kind in counter-column order.
var AllReactionKinds = []ReactionKind{
	ReactionHeart, ReactionThumb, ReactionSmile, ReactionParty, ReactionCry,
	ReactionWow, ReactionAngry, ReactionLove, ReactionLaugh, ReactionPray,
}

// BaseReactionKinds are available to every authenticated user; the rest
// require premium.
var BaseReactionKinds = []ReactionKind{ReactionHeart, ReactionThumb, ReactionSmile}

func ParseReactionKind(s string) (ReactionKind, bool) {
	switch ReactionKind(s) {
	case ReactionHeart, ReactionThumb, ReactionSmile, ReactionParty, ReactionCry,
		ReactionWow, ReactionAngry, ReactionLove, ReactionLaugh, ReactionPray:
		return ReactionKind(s), true
	}
	return "", false
}

// Extended reports whether the kind is one of the seven premium-gated kinds.
func (k ReactionKind) Extended() bool {
	switch k {
	case ReactionHeart, ReactionThumb, ReactionSmile:
		return false
	}
	return true
}

// Column returns the counter column for the kind. The column set is fixed;
// an unknown kind maps to the empty string and must be rejected upstream.
func (k ReactionKind) Column() string {
	switch k {
	case ReactionHeart:
		return "heart_count"
	case ReactionThumb:
		return "thumb_count"
	case ReactionSmile:
		return "smile_count"
	case ReactionParty:
		return "party_count"
	case ReactionCry:
		return "cry_count"
	case ReactionWow:
		return "wow_count"
	case ReactionAngry:
		return "angry_count"
	case ReactionLove:
		return "love_count"
	case ReactionLaugh:
		return "laugh_count"
	case ReactionPray:
		return "pray_count"
	}
	return ""
}

// ReactionCounts is the fixed-size counter record of a post. Counters are
// non-negative and monotonically non-decreasing for the post's lifetime.
type ReactionCounts struct {
	Heart int32 `json:"heart"`
	Thumb int32 `json:"thumb"`
	Smile int32 `json:"smile"`
	Party int32 `json:"party"`
	Cry   int32 `json:"cry"`
	Wow   int32 `json:"wow"`
	Angry int32 `json:"angry"`
	Love  int32 `json:"love"`
	Laugh int32 `json:"laugh"`
	Pray  int32 `json:"pray"`
}

func (c ReactionCounts) Get(kind ReactionKind) int32 {
	switch kind {
	case ReactionHeart:
		return c.Heart
	case ReactionThumb:
		return c.Thumb
	case ReactionSmile:
		return c.Smile
	case ReactionParty:
		return c.Party
	case ReactionCry:
		return c.Cry
	case ReactionWow:
		return c.Wow
	case ReactionAngry:
		return c.Angry
	case ReactionLove:
		return c.Love
	case ReactionLaugh:
		return c.Laugh
	case ReactionPray:
		return c.Pray
	}
	return 0
}

// Add returns a copy with one counter bumped. Used by in-memory stores and
// tests; SQL stores increment server-side instead.
func (c ReactionCounts) Add(kind ReactionKind) ReactionCounts {
	switch kind {
	case ReactionHeart:
		c.Heart++
	case ReactionThumb:
		c.Thumb++
	case ReactionSmile:
		c.Smile++
	case ReactionParty:
		c.Party++
	case ReactionCry:
		c.Cry++
	case ReactionWow:
		c.Wow++
	case ReactionAngry:
		c.Angry++
	case ReactionLove:
		c.Love++
	case ReactionLaugh:
		c.Laugh++
	case ReactionPray:
		c.Pray++
	}
	return c
}

// Total sums every counter.
func (c ReactionCounts) Total() int64 {
	var t int64
	for _, k := range AllReactionKinds {
		t += int64(c.Get(k))
	}
	return t
}
