// Package icons maps display state to the glyphs rendered in the song list.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio    string
	Album    string
	Liked    string
	NotLiked string
}

var (
	nerdIcons = Icons{
		Audio:    "\uf001 ",     // nf-fa-music
		Album:    "\U000f0025 ", // nf-md-album
		Liked:    "\U000f08d0",  // nf-md-heart
		NotLiked: "\U000f08d1",  // nf-md-heart_outline
	}

	unicodeIcons = Icons{
		Audio:    "🎵 ",
		Album:    "💿 ",
		Liked:    "★",
		NotLiked: "☆",
	}

	noneIcons = Icons{
		Audio:    "",
		Album:    "",
		Liked:    "*",
		NotLiked: " ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatAudio formats a song name with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// FormatAlbum formats an album name with the appropriate icon.
func FormatAlbum(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Album + name
}

// Liked returns the token shown for a liked song.
func Liked() string {
	return current.Liked
}

// NotLiked returns the token shown for a song that is not liked.
func NotLiked() string {
	return current.NotLiked
}

// LikeToken maps a liked flag to its display token.
func LikeToken(liked bool) string {
	if liked {
		return current.Liked
	}
	return current.NotLiked
}
