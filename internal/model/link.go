package model

// Link is a named URL for manual follow-up.
type Link struct {
	// Name is the platform name, e.g. "Google Search".
	Name string `json:"name"`

	// URL is the templated search or profile URL.
	URL string `json:"url"`
}

// LinkPack is an ordered list of links. Order is part of the contract:
// writers render links in slice order.
type LinkPack []Link
