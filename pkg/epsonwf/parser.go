package epsonwf

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// statuses longer than this keep their trailing period
const maxTrimmedStatusLen = 40

var (
	macRegexp         = regexp.MustCompile(`(?i)\b(?:[0-9A-F]{2}:){5}[0-9A-F]{2}\b`)
	styleHeightRegexp = regexp.MustCompile(`(?i)height\s*:\s*(\d+)`)
	statusLabelRegexp = regexp.MustCompile(`(?i)^(?:printer|scanner)\s+status\s*[:\-]?\s*`)
)

// ParseStatusPage extracts a Snapshot from a printer status page. The two
// known page layouts are tried in order; elements missing from the page are
// reported as absent values, never as errors.
func ParseStatusPage(doc *goquery.Document) *Snapshot {
	snap := &Snapshot{
		Model:         parseModel(doc),
		PrinterStatus: parsePrinterStatus(doc),
		Network:       parseKeyValueTable(doc, "info-network"),
		WifiDirect:    parseKeyValueTable(doc, "info-wfd"),
	}
	snap.Inks, snap.MaintenanceBoxPercent = parseTanks(doc)

	if mac, ok := snap.Network["MAC Address"]; ok && mac != "" {
		snap.MACAddress = mac
	} else {
		snap.MACAddress = macRegexp.FindString(doc.Text())
	}

	return snap
}

func parseModel(doc *goquery.Document) string {
	if title := collapseSpace(doc.Find("title").First().Text()); title != "" {
		return "Epson " + title
	}
	if header := collapseSpace(doc.Find("span.header").First().Text()); header != "" {
		return "Epson " + header
	}
	return ""
}

// parsePrinterStatus tries the fieldset layout first (WF series), then the
// information div layout (ET/L series).
func parsePrinterStatus(doc *goquery.Document) string {
	if fs := doc.Find("fieldset#PRT_STATUS").First(); fs.Length() > 0 {
		if status := cleanStatus(fs.Text()); status != "" {
			return status
		}
	}

	info := doc.Find("div.information").First()
	if info.Length() == 0 {
		return ""
	}
	span := info.Find("p.clearfix span").First()
	if span.Length() == 0 {
		span = info.Find("span").First()
	}
	return cleanStatus(span.Text())
}

func cleanStatus(raw string) string {
	s := collapseSpace(raw)
	s = statusLabelRegexp.ReplaceAllString(s, "")
	if len([]rune(s)) <= maxTrimmedStatusLen {
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// parseTanks reads every li.tank row. Rows marked with div.mbicn describe
// the maintenance box, the rest are ink cartridges labelled by div.clrname.
func parseTanks(doc *goquery.Document) (map[string]int, *int) {
	inks := map[string]int{}
	var maintenance *int

	doc.Find("li.tank").Each(func(_ int, li *goquery.Selection) {
		height, ok := tankBarHeight(li)
		if !ok {
			return
		}
		pct := clampPercent(height * 2)

		if li.Find("div.mbicn").Length() > 0 {
			maintenance = &pct
			return
		}
		if label := strings.ToUpper(collapseSpace(li.Find("div.clrname").First().Text())); label != "" {
			inks[label] = pct
		}
	})

	return inks, maintenance
}

// tankBarHeight finds the bar height in pixels inside the visual container
// div.tank: an img height attribute, else an inline height style on the img,
// else an inline height style on any descendant.
func tankBarHeight(li *goquery.Selection) (int, bool) {
	bar := li.Find("div.tank").First()
	if bar.Length() == 0 {
		return 0, false
	}

	img := bar.Find("img.color").First()
	if img.Length() == 0 {
		img = bar.Find("img").First()
	}
	if img.Length() > 0 {
		if h, ok := img.Attr("height"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(h)); err == nil {
				return n, true
			}
		}
		if n, ok := styleHeight(img); ok {
			return n, true
		}
	}

	found := 0
	ok := false
	bar.Find("*").EachWithBreak(func(_ int, desc *goquery.Selection) bool {
		if n, has := styleHeight(desc); has {
			found = n
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

func styleHeight(sel *goquery.Selection) (int, bool) {
	style, ok := sel.Attr("style")
	if !ok {
		return 0, false
	}
	m := styleHeightRegexp.FindStringSubmatch(style)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseKeyValueTable reads td.item-key / td.item-value rows under the
// container with the given id. Returns nil when the container is absent.
func parseKeyValueTable(doc *goquery.Document, containerID string) map[string]string {
	root := doc.Find("#" + containerID)
	if root.Length() == 0 {
		return nil
	}

	data := map[string]string{}
	root.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		key := cleanTableKey(tr.Find("td.item-key").First().Text())
		if key == "" {
			return
		}
		data[key] = collapseSpace(tr.Find("td.item-value").First().Text())
	})
	return data
}

func cleanTableKey(raw string) string {
	s := collapseSpace(raw)
	s = strings.ReplaceAll(s, " :", ":")
	s = strings.TrimSuffix(s, ":")
	return strings.TrimSpace(s)
}

// collapseSpace trims and folds any whitespace run (including non-breaking
// spaces) into a single space.
func collapseSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ' '
	}), " ")
}

func clampPercent(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
