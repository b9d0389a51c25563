// Package site holds the central configuration record that every page of a
// folio site is rendered from: personal details, section copy, social links,
// blog topics and image paths.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eringen/folio/posts"
)

// TopicAll is the distinguished topic that disables category filtering.
const TopicAll = posts.TopicAll

// Site is the read-only configuration record loaded from site.yaml.
type Site struct {
	Personal  PersonalInfo `yaml:"personalInfo"`
	Hero      Hero         `yaml:"heroSection"`
	About     About        `yaml:"aboutSection"`
	BlogIntro Section      `yaml:"blogSection"`
	Contact   Contact      `yaml:"contactSection"`
	Metadata  Metadata     `yaml:"siteMetadata"`
	Social    SocialLinks  `yaml:"socialLinks"`
	Blog      Blog         `yaml:"blog"`
	Analytics Analytics    `yaml:"analytics"`
	Images    Images       `yaml:"images"`
	Theme     Theme        `yaml:"theme"`
	Projects  []Project    `yaml:"projects"`
	Portfolio []Highlight  `yaml:"portfolio"`
}

type PersonalInfo struct {
	FullName   string `yaml:"fullName"`
	ShortName  string `yaml:"shortName"`
	BrandName  string `yaml:"brandName"`
	JobTitle   string `yaml:"jobTitle"`
	Experience string `yaml:"experience"`
	Expertise  string `yaml:"expertise"`
	ShortBio   string `yaml:"shortBio"`
	Email      string `yaml:"email"`
	Location   string `yaml:"location"`
}

type Hero struct {
	Greeting       string   `yaml:"greeting"`
	BackgroundText string   `yaml:"backgroundText"`
	Description    []string `yaml:"heroDescription"`
	CTAText        string   `yaml:"ctaText"`
	ScrollText     string   `yaml:"scrollText"`
}

type About struct {
	Title      string      `yaml:"title"`
	Journey    Journey     `yaml:"myJourney"`
	Experience []Timeline  `yaml:"experience"`
	Education  []Education `yaml:"education"`
	Skills     []string    `yaml:"skills"`
}

type Journey struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Timeline is one position in the experience list.
type Timeline struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

type Education struct {
	Degree      string `yaml:"degree"`
	School      string `yaml:"school"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

// Section is a title plus a short lead paragraph.
type Section struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Contact struct {
	Title       string      `yaml:"title"`
	Subtitle    string      `yaml:"subtitle"`
	Description string      `yaml:"description"`
	Form        ContactForm `yaml:"form"`
}

type ContactForm struct {
	NamePlaceholder    string `yaml:"namePlaceholder"`
	EmailPlaceholder   string `yaml:"emailPlaceholder"`
	MessagePlaceholder string `yaml:"messagePlaceholder"`
	SubmitText         string `yaml:"submitText"`
}

type Metadata struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	SiteURL     string   `yaml:"siteUrl"`
	SiteName    string   `yaml:"siteName"`
	ImageAlt    string   `yaml:"imageAlt"`
	Keywords    []string `yaml:"keywords"`
}

type SocialLinks struct {
	GitHub   SocialLink `yaml:"github"`
	LinkedIn SocialLink `yaml:"linkedin"`
	Twitter  SocialLink `yaml:"twitter"`
}

type SocialLink struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Title    string `yaml:"title"`
}

// Links returns the configured social links in display order, skipping
// entries without a URL.
func (s SocialLinks) Links() []SocialLink {
	var out []SocialLink
	for _, l := range []SocialLink{s.GitHub, s.LinkedIn, s.Twitter} {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}

type Blog struct {
	PostsPerPage   int      `yaml:"postsPerPage"`
	DefaultTopics  []string `yaml:"defaultTopics"`
	FeaturedTopics []string `yaml:"featuredTopics"`
}

type Analytics struct {
	GoogleAnalyticsID string `yaml:"googleAnalyticsId"`
}

type Images struct {
	OGImage          string     `yaml:"ogImage"`
	HeroIllustration string     `yaml:"heroIllustration"`
	Profile          string     `yaml:"profile"`
	Favicons         Favicons   `yaml:"favicons"`
	Decorative       Decorative `yaml:"decorative"`
}

type Favicons struct {
	AppleTouchIcon  string `yaml:"appleTouchIcon"`
	Favicon32       string `yaml:"favicon32"`
	Favicon16       string `yaml:"favicon16"`
	SafariPinnedTab string `yaml:"safariPinnedTab"`
	Manifest        string `yaml:"manifest"`
}

type Decorative struct {
	Dots     string `yaml:"dots"`
	DotsDark string `yaml:"dotsDark"`
	Arrow    string `yaml:"arrow"`
}

type Theme struct {
	DefaultTheme    string   `yaml:"defaultTheme"`
	SupportedThemes []string `yaml:"supportedThemes"`
}

// Project is a card on the projects page.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link"`
}

// Highlight is an achievement on the portfolio page.
type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Topics returns the enumerated topic list, always starting with TopicAll.
func (s *Site) Topics() []string {
	topics := []string{TopicAll}
	for _, t := range s.Blog.DefaultTopics {
		if t != TopicAll && t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

// Load reads the site record at path. A missing file yields Default().
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read site config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML site record on top of the defaults, so a partial
// file only overrides what it names.
func Parse(data []byte) (*Site, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse site config: %w", err)
	}
	s.setDefaults()
	return s, nil
}

func (s *Site) setDefaults() {
	if s.Blog.PostsPerPage <= 0 {
		s.Blog.PostsPerPage = 10
	}
	if len(s.Blog.DefaultTopics) == 0 {
		s.Blog.DefaultTopics = []string{TopicAll}
	}
	if s.Theme.DefaultTheme == "" {
		s.Theme.DefaultTheme = "dark"
	}
	if len(s.Theme.SupportedThemes) == 0 {
		s.Theme.SupportedThemes = []string{"light", "dark"}
	}
	if s.Metadata.SiteName == "" {
		s.Metadata.SiteName = s.Personal.FullName
	}
}

// Marshal encodes the record as YAML. Used by the project scaffolder.
func (s *Site) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
