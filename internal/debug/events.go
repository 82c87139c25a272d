package debug

// WriteStartData describes a write call before any cell is touched.
type WriteStartData struct {
	Text          string   `json:"text"`
	TextLength    int      `json:"text_length"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	Direction     string   `json:"direction"`
	Justification string   `json:"justification"`
	Anchor        string   `json:"anchor"`
	Flags         []string `json:"flags"`
	CursorX       int      `json:"cursor_x"`
	CursorY       int      `json:"cursor_y"`
}

// WriteEndData describes the outcome of a write call.
type WriteEndData struct {
	Placed    bool  `json:"placed"`
	Consumed  int   `json:"consumed"`
	Remaining int   `json:"remaining"`
	CursorX   int   `json:"cursor_x"`
	CursorY   int   `json:"cursor_y"`
	ElapsedUs int64 `json:"elapsed_us"`
}

// PhaseData records a transition of the write state machine.
type PhaseData struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PaddingData records the spacing guard.
type PaddingData struct {
	Axis   string `json:"axis"`
	Marked int    `json:"marked"`
}

// SegmentData describes the text up to the next line break.
type SegmentData struct {
	Position     int  `json:"position"`
	Length       int  `json:"length"`
	FreeRun      int  `json:"free_run"`
	BreakPending bool `json:"break_pending"`
	CursorX      int  `json:"cursor_x"`
	CursorY      int  `json:"cursor_y"`
}

// FitData describes a word-fit decision.
type FitData struct {
	Reason   string `json:"reason"` // "whole", "hardcut", "words", "lookahead", "truncate"
	FreeRun  int    `json:"free_run"`
	Placed   int    `json:"placed"`
	Consumed int    `json:"consumed"`
	Resume   int    `json:"resume"`
}

// CommitData describes text committed to the grid.
type CommitData struct {
	Text    string `json:"text"`
	StartX  int    `json:"start_x"`
	StartY  int    `json:"start_y"`
	Written int    `json:"written"`
	Result  string `json:"result"` // "moved_on", "end_of_buffer", "truncated"
}

// BreakData describes handling of an explicit line break.
type BreakData struct {
	MainBefore int  `json:"main_before"`
	MainAfter  int  `json:"main_after"`
	Advanced   bool `json:"advanced"`
	OK         bool `json:"ok"`
}

// AnchorData describes one trial of an anchored write.
type AnchorData struct {
	Anchor string `json:"anchor"`
	Rows   int    `json:"rows"`
	Placed bool   `json:"placed"`
}

// ErrorData contains error information.
type ErrorData struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
