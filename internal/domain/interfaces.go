package domain

// Summarizer selects the most salient sentences. The returned slice is in
// original sentence order.
type Summarizer interface {
	Name() string
	Summarize(sentences []string, n int) ([]SummarySentence, error)
}

// CloudRenderer turns ranked word counts into a rendered word cloud.
// The pipeline owns the counting; layout and drawing belong to the renderer.
type CloudRenderer interface {
	RenderCloud(counts []WordCount) (string, error)
}
