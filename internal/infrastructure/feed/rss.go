// Package feed construye el feed RSS 2.0 del catálogo con el namespace de Google Merchant.
package feed

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

const googleNS = "http://base.google.com/ns/1.0"

// Channel metadatos del canal.
type Channel struct {
	Title       string
	Link        string // URL pública de la tienda, sin "/" final
	Description string
}

// Build serializa products como <rss><channel><item>...; cada item lleva g:id, g:price,
// g:availability y una entrada g:size por talla.
func Build(ch Channel, products []*entity.Product, now time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:g", googleNS)

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(ch.Title)
	channel.CreateElement("link").SetText(ch.Link)
	channel.CreateElement("description").SetText(ch.Description)
	channel.CreateElement("lastBuildDate").SetText(now.UTC().Format(time.RFC1123Z))

	base := strings.TrimRight(ch.Link, "/")
	for _, p := range products {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(p.Name)
		item.CreateElement("link").SetText(fmt.Sprintf("%s/products/%d", base, p.ID))
		item.CreateElement("description").SetText(p.Description)
		item.CreateElement("g:id").SetText(fmt.Sprint(p.ID))
		item.CreateElement("g:price").SetText(p.Price.StringFixed(2) + " USD")
		item.CreateElement("g:availability").SetText(availability(p))
		if p.Category != "" {
			item.CreateElement("g:product_type").SetText(p.Category)
		}
		if p.ImageURL != "" {
			item.CreateElement("g:image_link").SetText(p.ImageURL)
		}
		for _, size := range p.SizeOptions {
			item.CreateElement("g:size").SetText(size)
		}
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("feed: serializar: %w", err)
	}
	return out.Bytes(), nil
}

func availability(p *entity.Product) string {
	if p.IsAvailable() {
		return "in_stock"
	}
	return "out_of_stock"
}
