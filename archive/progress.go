package archive

import (
	"io"
	"io/fs"
)

type progress struct {
	cb     ProgressCallback
	format Format
	name   string
	done   int64
	total  int64
}

func newProgress(cb ProgressCallback, f Format, total int64) *progress {
	return &progress{cb: cb, format: f, total: total}
}

func (p *progress) emit(stage Stage) {
	if p.cb == nil {
		return
	}
	p.cb(ProgressInfo{
		Stage:  stage,
		Format: p.format,
		Name:   p.name,
		Done:   p.done,
		Total:  p.total,
	})
}

func (p *progress) report(name string) {
	p.name = name
	p.emit(StageArchive)
}

func (p *progress) add(n int) {
	if n <= 0 {
		return
	}
	p.done += int64(n)
	p.emit(StageArchive)
}

func (p *progress) finish() {
	p.done = p.total
	p.emit(StageDone)
}

// reader counts bytes read from r into the progress.
func (p *progress) reader(r io.Reader) io.Reader {
	return &countingReader{r: r, p: p}
}

type countingReader struct {
	r io.Reader
	p *progress
}

func (c *countingReader) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	c.p.add(n)
	return n, err
}

// countingFile is an fs.File whose reads feed the progress.
type countingFile struct {
	fs.File
	p *progress
}

func (c *countingFile) Read(b []byte) (int, error) {
	n, err := c.File.Read(b)
	c.p.add(n)
	return n, err
}
