// Package site describes the author profile shown on every page.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

// Link is an entry of a table-of-contents section.
type Link struct {
	Name     string `toml:"name"`
	Link     string `toml:"link"`
	Internal bool   `toml:"internal"`
}

// Section groups links under a heading on the landing page.
type Section struct {
	Name  string `toml:"name"`
	Links []Link `toml:"links"`
}

// Profile is the author metadata and landing page table of contents.
type Profile struct {
	Author    string    `toml:"author"`
	Email     string    `toml:"email"`
	Avatar    string    `toml:"avatar"`
	Twitter   string    `toml:"twitter"`
	Instagram string    `toml:"instagram"`
	Heading   string    `toml:"articles_heading"`
	Sections  []Section `toml:"sections"`
}

// Default is the built-in profile used when no site file exists.
func Default() Profile {
	return Profile{
		Author:    "Mateusz Podlasin",
		Email:     "hi@mpodlasin.com",
		Avatar:    "/assets/images/me.svg",
		Twitter:   "https://twitter.com/m_podlasin",
		Instagram: "https://instagram.com/mpodlasin",
		Heading:   "Front-End & Functional Programming Articles",
		Sections: []Section{
			{
				Name: "Front-End & Functional Programming",
				Links: []Link{
					{Name: "twitter", Link: "https://twitter.com/m_podlasin"},
					{Name: "articles", Link: "/articles", Internal: true},
				},
			},
			{
				Name: "Travel & Photography",
				Links: []Link{
					{Name: "instagram", Link: "https://instagram.com/mpodlasin"},
				},
			},
		},
	}
}

// Load decodes a TOML profile. A missing file yields Default. Fields left empty in
// the file keep their default values.
func Load(path string) (Profile, error) {
	profile := Default()
	if strings.TrimSpace(path) == "" {
		return profile, nil
	}
	var decoded Profile
	meta, err := toml.DecodeFile(path, &decoded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return profile, nil
		}
		return Profile{}, fmt.Errorf("site: decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Profile{}, fmt.Errorf("site: unknown keys in %s: %v", path, undecoded)
	}
	merge(&profile, decoded)
	if err := profile.Validate(); err != nil {
		return Profile{}, fmt.Errorf("site: %s: %w", path, err)
	}
	return profile, nil
}

// Validate reports authoring mistakes in the table of contents.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Author) == "" {
		return errors.New("author is required")
	}
	for i, s := range p.Sections {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("section %d: name is required", i)
		}
		for j, l := range s.Links {
			if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.Link) == "" {
				return fmt.Errorf("section %q link %d: name and link are required", s.Name, j)
			}
		}
	}
	return nil
}

// Title builds a page title prefixed with the author name.
func (p Profile) Title(parts ...string) string {
	title := p.Author
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			title += " - " + part
			break
		}
	}
	return title
}

func merge(dst *Profile, src Profile) {
	set := func(field *string, v string) {
		if strings.TrimSpace(v) != "" {
			*field = strings.TrimSpace(v)
		}
	}
	set(&dst.Author, src.Author)
	set(&dst.Email, src.Email)
	set(&dst.Avatar, src.Avatar)
	set(&dst.Twitter, src.Twitter)
	set(&dst.Instagram, src.Instagram)
	set(&dst.Heading, src.Heading)
	if len(src.Sections) > 0 {
		dst.Sections = src.Sections
	}
}
