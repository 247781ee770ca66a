package icon

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Saved
	Pending
	Preview
	Cleared
	Palette
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "😿",
		nerd:    "ﮊ",
		plain:   "✗",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・)ノ",
		squares: "🟦",
	},
	Saved: {
		emoji:   "💾",
		nerd:    "",
		plain:   "●",
		kaomoji: "(￣▽￣)ノ",
		squares: "🟩",
	},
	Pending: {
		emoji:   "✏️",
		nerd:    "",
		plain:   "○",
		kaomoji: "(°ー°〃)",
		squares: "🟨",
	},
	Preview: {
		emoji:   "👀",
		nerd:    "",
		plain:   "~",
		kaomoji: "(⊙_⊙)",
		squares: "🟪",
	},
	Cleared: {
		emoji:   "🧹",
		nerd:    "",
		plain:   "-",
		kaomoji: "(ノ°▽°)ノ",
		squares: "⬜",
	},
	Palette: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "#",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟧",
	},
}
