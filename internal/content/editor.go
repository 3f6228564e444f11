package content

import (
	"errors"
)

var (
	ErrEditorDestroyed = errors.New("editor: destroyed")
	ErrEditorReadOnly  = errors.New("editor: read-only")
)

// focusState tracks why external updates may or may not be applied.
type focusState int

const (
	focusIdle focusState = iota
	focusFocused
	focusApplyingExternal
)

// UpdateFunc receives a snapshot of the document after every mutation. It
// fires synchronously within the mutation that caused it; callers must not
// assume debouncing.
type UpdateFunc func(doc *Document)

// EditorOptions configures a new editor session.
type EditorOptions struct {
	// Content is the initial document; nil starts with one empty paragraph,
	// the same as a freshly mounted editor surface.
	Content *Document
	// ReadOnly fixes editability for the lifetime of the session. Switching
	// between editable and read-only requires constructing a new editor.
	ReadOnly bool
	// OnUpdate is invoked with a snapshot after every local mutation.
	OnUpdate UpdateFunc
}

// Editor is the interactive consumer of the document tree: it owns a
// working copy exclusively, applies typed editing commands to it, tracks a
// cursor, and publishes snapshots through OnUpdate rather than exposing
// mutable internal state. Rendering goes through the same rule table as
// the stateless renderer, so editable and read-only views cannot diverge.
//
// An editor is single-threaded by contract, mirroring the event-loop
// execution model of the editing surface it stands in for.
type Editor struct {
	doc       *Document
	readOnly  bool
	onUpdate  UpdateFunc
	focus     focusState
	destroyed bool

	// cursor is the index of the block the next text command targets.
	cursor int
}

// NewEditor constructs an editor session. The initial content is deep
// copied; the caller's document is never mutated.
func NewEditor(opts EditorOptions) *Editor {
	doc := opts.Content
	if doc == nil || len(doc.Content) == 0 {
		doc = NewDocument(Paragraph())
	} else {
		doc = doc.Clone()
	}
	return &Editor{
		doc:      doc,
		readOnly: opts.ReadOnly,
		onUpdate: opts.OnUpdate,
		cursor:   len(doc.Content) - 1,
	}
}

// ReadOnly reports whether the session was created without editing.
func (e *Editor) ReadOnly() bool { return e.readOnly }

// Destroyed reports whether Destroy has been called.
func (e *Editor) Destroyed() bool { return e.destroyed }

// Focused reports whether the session currently holds input focus.
func (e *Editor) Focused() bool { return e.focus == focusFocused }

// Focus marks the session as holding input focus. External content updates
// are suppressed until Blur, so they cannot clobber the cursor mid-typing.
func (e *Editor) Focus() {
	if e.destroyed {
		return
	}
	e.focus = focusFocused
}

// Blur releases input focus.
func (e *Editor) Blur() {
	if e.destroyed {
		return
	}
	e.focus = focusIdle
}

// SetContent applies an externally supplied document (a controlled update
// from the owner). It reports whether the update was applied: updates are
// dropped while the session is focused or destroyed, and skipped when the
// incoming document equals the current one. OnUpdate is not fired — the
// owner already has this content.
func (e *Editor) SetContent(doc *Document) bool {
	if e.destroyed || e.focus == focusFocused {
		return false
	}
	if doc == nil {
		doc = NewDocument(Paragraph())
	}
	if sameDocument(e.doc, doc) {
		return false
	}

	e.focus = focusApplyingExternal
	e.doc = doc.Clone()
	if len(e.doc.Content) == 0 {
		e.doc.Content = append(e.doc.Content, Paragraph())
	}
	e.clampCursor()
	e.focus = focusIdle
	return true
}

// Snapshot returns a deep copy of the current document.
func (e *Editor) Snapshot() *Document {
	if e.destroyed {
		return NewDocument()
	}
	return e.doc.Clone()
}

// HTML renders the current document through the shared rule table. The
// output is identical for editable and read-only sessions holding the same
// tree.
func (e *Editor) HTML() string {
	if e.destroyed {
		return ""
	}
	return RenderHTML(e.doc)
}

// Destroy ends the session. It is idempotent: destroying twice is a no-op,
// never a panic. After Destroy all commands fail with ErrEditorDestroyed.
func (e *Editor) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.doc = nil
	e.onUpdate = nil
	e.focus = focusIdle
}

// --- editing commands ---

// InsertText appends text to the block under the cursor, carrying the
// given marks.
func (e *Editor) InsertText(text string, marks ...Mark) error {
	if err := e.writable(); err != nil {
		return err
	}
	block := &e.doc.Content[e.cursor]
	if block.Type == NodeImage || block.Type == NodeHorizontalRule {
		e.doc.Content = append(e.doc.Content, Paragraph())
		e.cursor = len(e.doc.Content) - 1
		block = &e.doc.Content[e.cursor]
	}
	block.Content = append(block.Content, Text(text, marks...))
	e.emit()
	return nil
}

// InsertParagraph starts a new empty paragraph and moves the cursor to it.
func (e *Editor) InsertParagraph() error {
	if err := e.writable(); err != nil {
		return err
	}
	e.doc.Content = append(e.doc.Content, Paragraph())
	e.cursor = len(e.doc.Content) - 1
	e.emit()
	return nil
}

// InsertHardBreak inserts a hard line break at the cursor block.
func (e *Editor) InsertHardBreak() error {
	if err := e.writable(); err != nil {
		return err
	}
	block := &e.doc.Content[e.cursor]
	block.Content = append(block.Content, Node{Type: NodeHardBreak})
	e.emit()
	return nil
}

// SetHeading converts the cursor block to a heading of the given level;
// level 0 converts it back to a paragraph.
func (e *Editor) SetHeading(level int) error {
	if err := e.writable(); err != nil {
		return err
	}
	block := &e.doc.Content[e.cursor]
	if level <= 0 {
		block.Type = NodeParagraph
		block.Attrs = nil
	} else {
		if level > 6 {
			level = 6
		}
		block.Type = NodeHeading
		block.Attrs = &Attrs{Level: level}
	}
	e.emit()
	return nil
}

// ToggleMark adds the mark to every text node of the cursor block, or
// removes it if every text node already carries it.
func (e *Editor) ToggleMark(mark Mark) error {
	if err := e.writable(); err != nil {
		return err
	}
	block := &e.doc.Content[e.cursor]

	all := true
	found := false
	for i := range block.Content {
		if block.Content[i].Type != NodeText {
			continue
		}
		found = true
		if !block.Content[i].HasMark(mark.Type) {
			all = false
		}
	}
	if !found {
		return nil
	}

	for i := range block.Content {
		n := &block.Content[i]
		if n.Type != NodeText {
			continue
		}
		if all {
			kept := n.Marks[:0]
			for _, m := range n.Marks {
				if m.Type != mark.Type {
					kept = append(kept, m)
				}
			}
			n.Marks = kept
		} else if !n.HasMark(mark.Type) {
			n.Marks = append(n.Marks, mark)
		}
	}
	e.emit()
	return nil
}

// InsertImage appends an image block after the cursor block.
func (e *Editor) InsertImage(src, alt string) error {
	if err := e.writable(); err != nil {
		return err
	}
	img := Image(src)
	img.Attrs.Alt = alt
	e.doc.Content = append(e.doc.Content, img)
	e.cursor = len(e.doc.Content) - 1
	e.emit()
	return nil
}

// SetImageCaption edits the caption of the n-th image in the document
// (the inline caption editing command of the toolbar).
func (e *Editor) SetImageCaption(index int, caption string) error {
	return e.editImage(index, func(a *Attrs) { a.Caption = &caption })
}

// SetImageWidth resizes the n-th image; an empty width means auto
// (the drag-resize command).
func (e *Editor) SetImageWidth(index int, width string) error {
	return e.editImage(index, func(a *Attrs) {
		if width == "" {
			a.Width = nil
			return
		}
		a.Width = &width
	})
}

// SetImageAlignment aligns the n-th image left, center or right.
func (e *Editor) SetImageAlignment(index int, alignment string) error {
	switch alignment {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		alignment = AlignCenter
	}
	return e.editImage(index, func(a *Attrs) { a.Alignment = alignment })
}

func (e *Editor) editImage(index int, edit func(*Attrs)) error {
	if err := e.writable(); err != nil {
		return err
	}
	seen := 0
	for i := range e.doc.Content {
		if e.doc.Content[i].Type != NodeImage {
			continue
		}
		if seen == index {
			if e.doc.Content[i].Attrs == nil {
				e.doc.Content[i].Attrs = &Attrs{}
			}
			edit(e.doc.Content[i].Attrs)
			e.emit()
			return nil
		}
		seen++
	}
	return errors.New("editor: no image at index")
}

func (e *Editor) writable() error {
	if e.destroyed {
		return ErrEditorDestroyed
	}
	if e.readOnly {
		return ErrEditorReadOnly
	}
	return nil
}

func (e *Editor) clampCursor() {
	if e.cursor >= len(e.doc.Content) {
		e.cursor = len(e.doc.Content) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

func (e *Editor) emit() {
	if e.onUpdate != nil {
		e.onUpdate(e.doc.Clone())
	}
}

func sameDocument(a, b *Document) bool {
	aj, errA := a.JSON()
	bj, errB := b.JSON()
	if errA != nil || errB != nil {
		return false
	}
	return aj == bj
}
