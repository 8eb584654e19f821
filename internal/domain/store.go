package domain

import "strings"

// StoreKind is the shop a store url points to
type StoreKind int

const (
	StoreOther StoreKind = iota
	StoreSteam
	StoreHumbleBundle
	StoreGOG
	StoreItch
)

func (k StoreKind) String() string {
	switch k {
	case StoreSteam:
		return "Steam"
	case StoreHumbleBundle:
		return "HumbleBundle"
	case StoreGOG:
		return "GOG"
	case StoreItch:
		return "Itch"
	default:
		return "Other"
	}
}

// StoreLink is a store url with the shop it belongs to
type StoreLink struct {
	Kind StoreKind
	URL  string
}

// NewStoreLink classifies url by its host
func NewStoreLink(url string) StoreLink {
	return StoreLink{Kind: ClassifyStore(url), URL: url}
}

// ClassifyStore returns the shop a url points to
func ClassifyStore(url string) StoreKind {
	u := strings.ToLower(url)
	switch {
	case strings.Contains(u, "steampowered"):
		return StoreSteam
	case strings.Contains(u, "humblebundle"):
		return StoreHumbleBundle
	case strings.Contains(u, "gog.com"):
		return StoreGOG
	case strings.Contains(u, "itch.io"):
		return StoreItch
	default:
		return StoreOther
	}
}
