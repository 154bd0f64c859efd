package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"lust/internal/diag"
	"lust/internal/project"
	"lust/internal/source"
	"lust/internal/version"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 2

// Cache хранит результат разбора файла по ключу из его содержимого.
type Cache interface {
	Get(key project.Digest, out *DiskPayload) (bool, error)
	Put(key project.Digest, payload *DiskPayload) error
}

// DiskCache хранит диагностики разбора на диске, по одному msgpack-файлу на ключ.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedNote — Note без FileID: спаны всегда относятся к тому же файлу.
type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// CachedEdit — FixEdit без FileID.
type CachedEdit struct {
	Start   uint32
	End     uint32
	NewText string
}

type CachedFix struct {
	Title string
	Edits []CachedEdit
}

type CachedDiagnostic struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
	Notes    []CachedNote
	Fixes    []CachedFix
}

// DiskPayload is the file-independent result of parsing one source file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	ContentHash project.Digest
	Errored     bool
	Stmts       int

	Diagnostics []CachedDiagnostic
}

// CacheKey: H(content || toolchain || schema || maxDiagnostics).
// Лимит диагностик входит в ключ, иначе урезанный прогон отравит полный.
func CacheKey(file *source.File, maxDiagnostics int) project.Digest {
	return project.Combine(project.Digest(file.Hash),
		version.Semver,
		strconv.Itoa(int(diskCacheSchemaVersion)),
		strconv.Itoa(maxDiagnostics),
	)
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens (creating if needed) a cache rooted at dir.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// двухсимвольный префикс, чтобы не держать тысячи файлов в одном каталоге
	return filepath.Join(c.dir, "parse", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	err = os.Rename(tmp, p)
	return err
}

// Get reads and deserializes a payload from the disk cache.
// Запись чужой схемы считается промахом.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	*out = payload
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// toPayload снимает с результата всё, что зависит от FileSet.
func toPayload(file *source.File, bag *diag.Bag, errored bool, stmts int) *DiskPayload {
	p := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		ContentHash: project.Digest(file.Hash),
		Errored:     errored,
		Stmts:       stmts,
	}
	for _, d := range bag.Items() {
		cd := CachedDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		for _, f := range d.Fixes {
			cf := CachedFix{Title: f.Title}
			for _, e := range f.Edits {
				cf.Edits = append(cf.Edits, CachedEdit{Start: e.Span.Start, End: e.Span.End, NewText: e.NewText})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		p.Diagnostics = append(p.Diagnostics, cd)
	}
	return p
}

// restoreBag привязывает закэшированные диагностики к file.
func restoreBag(p *DiskPayload, file source.FileID, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range p.Diagnostics {
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code),
			source.Span{File: file, Start: cd.Start, End: cd.End}, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: file, Start: n.Start, End: n.End}, n.Msg)
		}
		for _, cf := range cd.Fixes {
			edits := make([]diag.FixEdit, 0, len(cf.Edits))
			for _, e := range cf.Edits {
				edits = append(edits, diag.FixEdit{Span: source.Span{File: file, Start: e.Start, End: e.End}, NewText: e.NewText})
			}
			d = d.WithFix(cf.Title, edits...)
		}
		bag.Add(d)
	}
	return bag
}
