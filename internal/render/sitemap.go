package render

import (
	"encoding/xml"
	"fmt"

	"github.com/nDmitry/mediafeeds/internal/entity"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	videoNS   = "http://www.google.com/schemas/sitemap-video/1.1"
)

type sitemapIndexXML struct {
	XMLName  xml.Name        `xml:"sitemapindex"`
	Xmlns    string          `xml:"xmlns,attr"`
	Sitemaps []sitemapRefXML `xml:"sitemap"`
}

type sitemapRefXML struct {
	Loc string `xml:"loc"`
}

type urlSetXML struct {
	XMLName    xml.Name `xml:"urlset"`
	Xmlns      string   `xml:"xmlns,attr"`
	XmlnsVideo string   `xml:"xmlns:video,attr"`
	URLs       []urlXML `xml:"url"`
}

type urlXML struct {
	Loc        string    `xml:"loc"`
	LastMod    string    `xml:"lastmod,omitempty"`
	ChangeFreq string    `xml:"changefreq,omitempty"`
	Video      *videoXML `xml:"video:video,omitempty"`
}

type videoXML struct {
	ThumbnailLoc    string `xml:"video:thumbnail_loc,omitempty"`
	Title           string `xml:"video:title"`
	Description     string `xml:"video:description"`
	ContentLoc      string `xml:"video:content_loc,omitempty"`
	PlayerLoc       string `xml:"video:player_loc,omitempty"`
	Duration        int    `xml:"video:duration,omitempty"`
	ViewCount       int    `xml:"video:view_count"`
	PublicationDate string `xml:"video:publication_date,omitempty"`
}

func (r *Renderer) sitemapIndex(index *entity.SitemapIndexResult) ([]byte, error) {
	doc := sitemapIndexXML{Xmlns: sitemapNS}

	for page := 0; page < index.Pages; page++ {
		doc.Sitemaps = append(doc.Sitemaps, sitemapRefXML{Loc: r.links.SitemapPage(page)})
	}

	return marshal(doc)
}

func (r *Renderer) urlSet(result *entity.FeedResult) ([]byte, error) {
	doc := urlSetXML{Xmlns: sitemapNS, XmlnsVideo: videoNS}

	for _, link := range result.Links {
		doc.URLs = append(doc.URLs, urlXML{Loc: link, ChangeFreq: "daily"})
	}

	for _, m := range result.Items {
		page := r.links.Media(m.Slug)

		video := &videoXML{
			ThumbnailLoc:    m.ThumbnailURL,
			Title:           truncate(m.Title, maxVideoTitle),
			Description:     truncate(plainText(m.Description), maxVideoDescription),
			ContentLoc:      m.File.URL,
			Duration:        m.Duration,
			ViewCount:       m.Views,
			PublicationDate: w3cTime(m.PublishOn),
		}

		// Google requires one of content_loc or player_loc
		if video.ContentLoc == "" {
			video.PlayerLoc = page
		}

		doc.URLs = append(doc.URLs, urlXML{
			Loc:     page,
			LastMod: w3cTime(m.ModifiedOn),
			Video:   video,
		})
	}

	return marshal(doc)
}

func marshal(doc any) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")

	if err != nil {
		return nil, fmt.Errorf("could not marshal sitemap: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
