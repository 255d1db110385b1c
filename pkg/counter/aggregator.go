package counter

// newReport creates an empty Report for a run.
func newReport(insights bool) *Report {
	return &Report{
		Extensions: make(map[string]*ExtensionSummary),
		Errors:     make(map[string]error),
		Insights:   insights,
	}
}

// fold merges one FileResult into the report. Numeric accumulation is
// order-insensitive, so folding the same multiset of results in any order
// yields the same totals.
func (r *Report) fold(fr FileResult) {
	r.Code += fr.Code
	r.Comment += fr.Comment
	r.Blank += fr.Blank
	r.Total += fr.Total
	r.Files++

	summary, ok := r.Extensions[fr.Ext]
	if !ok {
		summary = &ExtensionSummary{Ext: fr.Ext}
		r.Extensions[fr.Ext] = summary
	}

	summary.Code += fr.Code
	summary.Comment += fr.Comment
	summary.Blank += fr.Blank
	summary.Total += fr.Total
	summary.Files++

	if r.Insights {
		summary.noteLongest(fr)
	}
}

// skip records a file that could not be counted.
func (r *Report) skip(path string, err error) {
	r.SkippedFiles++
	r.Errors[path] = err
}

// noteLongest updates the longest-file record. The candidate wins on a
// strictly larger code count, or on an equal count with a smaller traversal
// sequence number. Comparing sequence numbers instead of arrival order keeps
// the tie-break pinned to traversal order even when results are folded out
// of order.
func (s *ExtensionSummary) noteLongest(fr FileResult) {
	switch {
	case !s.hasLongest:
	case fr.Code > s.LongestCode:
	case fr.Code == s.LongestCode && fr.Seq < s.longestSeq:
	default:
		return
	}

	s.LongestFile = fr.Path
	s.LongestCode = fr.Code
	s.longestSeq = fr.Seq
	s.hasLongest = true
}
