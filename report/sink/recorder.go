package sink

// Recorder buffers sink calls so a part of a document can be produced
// before the parts preceding it are known.
type Recorder struct {
	ops []func(Sink)
}

var _ Sink = (*Recorder)(nil)

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ReplayTo plays the recorded calls on s and forgets them.
func (r *Recorder) ReplayTo(s Sink) {
	for _, op := range r.ops {
		op(s)
	}
	r.ops = nil
}

// Len returns the number of recorded calls
func (r *Recorder) Len() int {
	return len(r.ops)
}

func (r *Recorder) record(op func(Sink)) {
	r.ops = append(r.ops, op)
}

func (r *Recorder) Head(title string) {
	r.record(func(s Sink) { s.Head(title) })
}

func (r *Recorder) Body() {
	r.record(func(s Sink) { s.Body() })
}

func (r *Recorder) Section(level int, title, anchor string) {
	r.record(func(s Sink) { s.Section(level, title, anchor) })
}

func (r *Recorder) SectionEnd(level int) {
	r.record(func(s Sink) { s.SectionEnd(level) })
}

func (r *Recorder) Paragraph(content ...Inline) {
	r.record(func(s Sink) { s.Paragraph(content...) })
}

func (r *Recorder) Table() {
	r.record(func(s Sink) { s.Table() })
}

func (r *Recorder) TableHeader(headers ...string) {
	r.record(func(s Sink) { s.TableHeader(headers...) })
}

func (r *Recorder) TableRow(cells ...Cell) {
	r.record(func(s Sink) { s.TableRow(cells...) })
}

func (r *Recorder) TableEnd() {
	r.record(func(s Sink) { s.TableEnd() })
}

func (r *Recorder) BodyEnd() {
	r.record(func(s Sink) { s.BodyEnd() })
}

// Flush is a no-op, the recorder holds everything in memory.
func (r *Recorder) Flush() error {
	return nil
}

// Close is a no-op.
func (r *Recorder) Close() error {
	return nil
}
