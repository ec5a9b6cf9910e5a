package links

import (
	"net/url"
	"path/filepath"

	"github.com/beevik/etree"

	smerrors "github.com/arthur-debert/shortcut-maker/pkg/errors"
	"github.com/arthur-debert/shortcut-maker/pkg/filesystem"
)

const plistDoctype = `plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`

type weblocProvider struct {
	matcher
	fs filesystem.FS
}

// NewWebloc returns a provider storing links as Finder location files: a
// property list holding a file:// URL.
func NewWebloc(fsys filesystem.FS, opts Options) Provider {
	return &weblocProvider{
		matcher: newMatcher(KindWebloc, opts),
		fs:      fsys,
	}
}

func (p *weblocProvider) Name() string {
	return string(KindWebloc)
}

func (p *weblocProvider) Create(shortcutPath, targetPath string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(plistDoctype)
	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")
	dict.CreateElement("key").SetText("URL")
	dict.CreateElement("string").SetText(fileURL(targetPath))
	doc.Indent(2)

	data, err := doc.WriteToBytes()
	if err != nil {
		return smerrors.Wrapf(err, smerrors.ErrLinkCreate, "failed to encode webloc %s", shortcutPath)
	}
	if err := filesystem.EnsureParent(p.fs, shortcutPath); err != nil {
		return smerrors.Wrapf(err, smerrors.ErrLinkCreate, "failed to create directory for %s", shortcutPath)
	}
	if err := p.fs.WriteFile(shortcutPath, data, 0644); err != nil {
		return smerrors.Wrapf(err, smerrors.ErrLinkCreate, "failed to write webloc %s", shortcutPath)
	}
	return nil
}

func (p *weblocProvider) ReadTarget(shortcutPath string) (string, error) {
	data, err := p.fs.ReadFile(shortcutPath)
	if err != nil {
		return "", smerrors.Wrapf(err, smerrors.ErrLinkRead, "failed to read webloc %s", shortcutPath)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", smerrors.Wrapf(err, smerrors.ErrLinkRead, "failed to parse webloc %s", shortcutPath)
	}

	raw, ok := urlValue(doc)
	if !ok {
		return "", smerrors.Newf(smerrors.ErrLinkRead, "webloc %s has no URL", shortcutPath)
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return "", smerrors.Newf(smerrors.ErrLinkRead, "webloc %s does not point at a local file: %q", shortcutPath, raw)
	}
	return absTarget(shortcutPath, filepath.FromSlash(u.Path)), nil
}

func (p *weblocProvider) Delete(shortcutPath string) error {
	if err := p.fs.Remove(shortcutPath); err != nil && !isNotExist(err) {
		return smerrors.Wrapf(err, smerrors.ErrLinkRemove, "failed to remove webloc %s", shortcutPath)
	}
	return nil
}

func (p *weblocProvider) IsLink(path string) bool {
	return p.matches(path, p.ReadTarget)
}

// urlValue returns the <string> following the URL <key> of the top dict.
func urlValue(doc *etree.Document) (string, bool) {
	dict := doc.FindElement("./plist/dict")
	if dict == nil {
		return "", false
	}
	children := dict.ChildElements()
	for i := 0; i+1 < len(children); i++ {
		if children[i].Tag == "key" && children[i].Text() == "URL" && children[i+1].Tag == "string" {
			return children[i+1].Text(), true
		}
	}
	return "", false
}

func fileURL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
