// Package epub reads EPUB publications into reading-order chapters,
// using beevik/etree for the container, package and navigation documents.
package epub

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pmcompare"
)

// Ensure Reader implements pmcompare.PublicationReader at compile time.
var _ pmcompare.PublicationReader = (*Reader)(nil)

// DefaultMaxEntrySize is the default limit on a single decompressed entry.
const DefaultMaxEntrySize int64 = 64 * 1024 * 1024

const containerPath = "META-INF/container.xml"

// Reader reads EPUB files from disk.
type Reader struct {
	// MaxEntrySize limits the decompressed size of any one archive entry.
	MaxEntrySize int64
}

// NewReader creates a new Reader with default limits.
func NewReader() *Reader {
	return &Reader{MaxEntrySize: DefaultMaxEntrySize}
}

// ReadPublication opens the EPUB at path and returns its XHTML spine items
// in reading order. Chapter titles come from the navigation document when
// one is present.
func (r *Reader) ReadPublication(ctx context.Context, filePath string) (*pmcompare.Publication, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, pmcompare.Errorf(pmcompare.EINVALID, "cannot open %q as EPUB: %v", filePath, err)
	}
	defer zr.Close()

	return r.read(ctx, &zr.Reader)
}

func (r *Reader) read(ctx context.Context, zr *zip.Reader) (*pmcompare.Publication, error) {
	a := &archive{zr: zr, limit: r.MaxEntrySize}
	if a.limit <= 0 {
		a.limit = DefaultMaxEntrySize
	}

	opfPath, err := a.rootFile()
	if err != nil {
		return nil, err
	}

	pkg, err := a.readXML(opfPath)
	if err != nil {
		return nil, pmcompare.Errorf(pmcompare.EINVALID, "invalid package document: %v", err)
	}

	p := parsePackage(pkg, opfPath)
	titles := a.navTitles(p)

	pub := &pmcompare.Publication{Title: p.title}
	for _, idref := range p.spine {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item, ok := p.manifest[idref]
		if !ok || !isXHTML(item.mediaType) {
			continue
		}

		data, err := a.readFile(item.path)
		if err != nil {
			return nil, fmt.Errorf("reading chapter %s: %w", item.path, err)
		}

		pub.Chapters = append(pub.Chapters, pmcompare.PublicationChapter{
			Href:    item.path,
			Title:   titles[item.path],
			Content: string(stripBOM(data)),
		})
	}

	if len(pub.Chapters) == 0 {
		return nil, pmcompare.Errorf(pmcompare.EINVALID, "publication has no readable chapters")
	}
	return pub, nil
}

// manifestItem is a resolved <item> of the package manifest.
type manifestItem struct {
	path       string
	mediaType  string
	properties string
}

// packageDoc is the subset of the OPF package document the reader needs.
type packageDoc struct {
	title    string
	manifest map[string]manifestItem
	spine    []string
	ncxID    string
}

func parsePackage(doc *etree.Document, opfPath string) packageDoc {
	p := packageDoc{manifest: make(map[string]manifestItem)}

	root := doc.Root()
	if root == nil {
		return p
	}

	if metadata := root.SelectElement("metadata"); metadata != nil {
		if title := metadata.SelectElement("title"); title != nil {
			p.title = strings.TrimSpace(title.Text())
		}
	}

	if manifest := root.SelectElement("manifest"); manifest != nil {
		for _, item := range manifest.SelectElements("item") {
			id := item.SelectAttrValue("id", "")
			href := item.SelectAttrValue("href", "")
			if id == "" || href == "" {
				continue
			}
			resolved := resolvePath(opfPath, href)
			if resolved == "" {
				continue
			}
			p.manifest[id] = manifestItem{
				path:       resolved,
				mediaType:  strings.ToLower(strings.TrimSpace(item.SelectAttrValue("media-type", ""))),
				properties: item.SelectAttrValue("properties", ""),
			}
		}
	}

	if spine := root.SelectElement("spine"); spine != nil {
		p.ncxID = spine.SelectAttrValue("toc", "")
		for _, ref := range spine.SelectElements("itemref") {
			if idref := ref.SelectAttrValue("idref", ""); idref != "" {
				p.spine = append(p.spine, idref)
			}
		}
	}

	return p
}

// navTitles maps chapter paths to titles from the EPUB 3 navigation document
// or, failing that, the EPUB 2 NCX. Navigation errors are not fatal.
func (a *archive) navTitles(p packageDoc) map[string]string {
	titles := make(map[string]string)

	for _, item := range p.manifest {
		if !hasProperty(item.properties, "nav") {
			continue
		}
		if doc, err := a.readXML(item.path); err == nil {
			for _, link := range doc.FindElements("//nav//a") {
				addTitle(titles, item.path, link.SelectAttrValue("href", ""), innerText(link))
			}
		}
	}
	if len(titles) > 0 {
		return titles
	}

	ncx, ok := p.manifest[p.ncxID]
	if !ok {
		return titles
	}
	if doc, err := a.readXML(ncx.path); err == nil {
		for _, point := range doc.FindElements("//navPoint") {
			label := point.FindElement("navLabel/text")
			content := point.SelectElement("content")
			if label == nil || content == nil {
				continue
			}
			addTitle(titles, ncx.path, content.SelectAttrValue("src", ""), label.Text())
		}
	}
	return titles
}

func addTitle(titles map[string]string, basePath, href, title string) {
	href, _, _ = strings.Cut(href, "#")
	title = strings.Join(strings.Fields(title), " ")
	if href == "" || title == "" {
		return
	}
	resolved := resolvePath(basePath, href)
	if resolved == "" {
		return
	}
	if _, exists := titles[resolved]; !exists {
		titles[resolved] = title
	}
}

// innerText concatenates all character data under e.
func innerText(e *etree.Element) string {
	var b strings.Builder
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(innerText(t))
		}
	}
	return b.String()
}

func hasProperty(properties, want string) bool {
	for _, p := range strings.Fields(properties) {
		if p == want {
			return true
		}
	}
	return false
}

func isXHTML(mediaType string) bool {
	return mediaType == "application/xhtml+xml" || mediaType == "text/html"
}

// archive reads entries from an EPUB zip with path and size checks.
type archive struct {
	zr    *zip.Reader
	limit int64
}

// rootFile returns the package document path named by container.xml,
// falling back to the first .opf entry in the archive.
func (a *archive) rootFile() (string, error) {
	if a.find(containerPath) != nil {
		doc, err := a.readXML(containerPath)
		if err != nil {
			return "", pmcompare.Errorf(pmcompare.EINVALID, "invalid container.xml: %v", err)
		}
		var fallback string
		for _, rf := range doc.FindElements("//rootfile") {
			fullPath := strings.TrimSpace(rf.SelectAttrValue("full-path", ""))
			if fullPath == "" {
				continue
			}
			if strings.EqualFold(rf.SelectAttrValue("media-type", ""), "application/oebps-package+xml") {
				return fullPath, nil
			}
			if fallback == "" {
				fallback = fullPath
			}
		}
		if fallback != "" {
			return fallback, nil
		}
	}

	for _, f := range a.zr.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".opf") {
			return f.Name, nil
		}
	}
	return "", pmcompare.Errorf(pmcompare.EINVALID, "no package document found in archive")
}

// find looks up an entry by exact name, then case-insensitively.
func (a *archive) find(name string) *zip.File {
	for _, f := range a.zr.File {
		if f.Name == name {
			return f
		}
	}
	for _, f := range a.zr.File {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

func (a *archive) readXML(name string) (*etree.Document, error) {
	data, err := a.readFile(name)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(stripBOM(data)); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return doc, nil
}

func (a *archive) readFile(name string) ([]byte, error) {
	f := a.find(name)
	if f == nil {
		return nil, pmcompare.Errorf(pmcompare.ENOTFOUND, "archive entry %q not found", name)
	}
	if !isSafePath(f.Name) {
		return nil, pmcompare.Errorf(pmcompare.EINVALID, "unsafe archive entry path %q", f.Name)
	}
	if f.UncompressedSize64 > uint64(a.limit) {
		return nil, pmcompare.Errorf(pmcompare.EINVALID, "archive entry %q too large", f.Name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer rc.Close()

	// Declared sizes can be forged, so read one byte past the limit.
	data, err := io.ReadAll(io.LimitReader(rc, a.limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name, err)
	}
	if int64(len(data)) > a.limit {
		return nil, pmcompare.Errorf(pmcompare.EINVALID, "archive entry %q too large", f.Name)
	}
	return data, nil
}

// resolvePath resolves href against the directory of basePath. Returns ""
// for absolute references or paths escaping the archive root.
func resolvePath(basePath, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "/") || strings.Contains(href, "://") {
		return ""
	}
	if decoded, err := url.PathUnescape(href); err == nil {
		href = decoded
	}
	resolved := path.Clean(path.Join(path.Dir(basePath), href))
	if !isSafePath(resolved) {
		return ""
	}
	return resolved
}

func isSafePath(p string) bool {
	cleaned := path.Clean(p)
	return !strings.HasPrefix(cleaned, "/") && cleaned != ".." && !strings.HasPrefix(cleaned, "../")
}

func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
