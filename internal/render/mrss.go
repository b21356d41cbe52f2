package render

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/feeds"
	"github.com/nDmitry/mediafeeds/internal/entity"
)

const (
	defaultEnclosureType = "application/octet-stream"

	mediaNS   = "http://search.yahoo.com/mrss/"
	contentNS = "http://purl.org/rss/1.0/modules/content/"
)

// mrssXML is the <rss> document gorilla/feeds produces, extended with the Media RSS namespace
type mrssXML struct {
	XMLName          xml.Name     `xml:"rss"`
	Version          string       `xml:"version,attr"`
	ContentNamespace string       `xml:"xmlns:content,attr"`
	MediaNamespace   string       `xml:"xmlns:media,attr"`
	Channel          *mrssChannel `xml:"channel"`
}

// mrssChannel shadows the channel items with their Media RSS variant
type mrssChannel struct {
	*feeds.RssFeed
	Items []*mrssItem `xml:"item"`
}

type mrssItem struct {
	*feeds.RssItem
	MediaContent   *mediaContentXML   `xml:"media:content,omitempty"`
	MediaThumbnail *mediaThumbnailXML `xml:"media:thumbnail,omitempty"`
}

type mediaContentXML struct {
	URL      string `xml:"url,attr"`
	Type     string `xml:"type,attr,omitempty"`
	Medium   string `xml:"medium,attr,omitempty"`
	FileSize int64  `xml:"fileSize,attr,omitempty"`
	Duration int    `xml:"duration,attr,omitempty"`
}

type mediaThumbnailXML struct {
	URL string `xml:"url,attr"`
}

// Feed renders an RSS 2.0 feed with Media RSS elements and one enclosure per media item
func (r *Renderer) Feed(result *entity.FeedResult) ([]byte, error) {
	feed := &feeds.Feed{
		Title:       result.Title,
		Link:        &feeds.Link{Href: r.links.Home()},
		Description: result.Title,
	}

	for _, m := range result.Items {
		link := r.links.Media(m.Slug)

		item := &feeds.Item{
			Id:          link,
			Title:       m.Title,
			Link:        &feeds.Link{Href: link},
			Description: plainText(m.Description),
			Created:     m.PublishOn,
			Updated:     m.ModifiedOn,
		}

		if m.File.URL != "" {
			item.Enclosure = &feeds.Enclosure{
				Url:    m.File.URL,
				Type:   enclosureType(m.File),
				Length: strconv.FormatInt(m.File.Size, 10),
			}
		}

		feed.Items = append(feed.Items, item)

		if feed.Created.IsZero() || m.PublishOn.After(feed.Created) {
			feed.Created = m.PublishOn
		}
	}

	channel := (&feeds.Rss{Feed: feed}).RssFeed()

	doc := mrssXML{
		Version:          "2.0",
		ContentNamespace: contentNS,
		MediaNamespace:   mediaNS,
		Channel:          &mrssChannel{RssFeed: channel},
	}

	// RssFeed keeps the order of feed.Items
	for i, rssItem := range channel.Items {
		doc.Channel.Items = append(doc.Channel.Items, newMRSSItem(rssItem, result.Items[i]))
	}

	channel.Items = nil

	body, err := xml.MarshalIndent(doc, "", "  ")

	if err != nil {
		return nil, fmt.Errorf("could not marshal %q to RSS: %w", result.Title, err)
	}

	return append([]byte(xml.Header), body...), nil
}

func newMRSSItem(rssItem *feeds.RssItem, m entity.MediaItem) *mrssItem {
	item := &mrssItem{RssItem: rssItem}

	if m.File.URL != "" {
		item.MediaContent = &mediaContentXML{
			URL:      m.File.URL,
			Type:     m.File.MimeType,
			Medium:   medium(m.File.MimeType),
			FileSize: m.File.Size,
			Duration: m.Duration,
		}
	}

	if m.ThumbnailURL != "" {
		item.MediaThumbnail = &mediaThumbnailXML{URL: m.ThumbnailURL}
	}

	return item
}

func enclosureType(f entity.MediaFile) string {
	if f.MimeType == "" {
		return defaultEnclosureType
	}

	return f.MimeType
}

// medium maps a MIME type to the Media RSS medium attribute, empty when unknown
func medium(mimeType string) string {
	kind, _, _ := strings.Cut(mimeType, "/")

	switch kind {
	case "video", "audio", "image":
		return kind
	default:
		return ""
	}
}
