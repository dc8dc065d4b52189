package models

type GDELTDocResponse struct {
	Articles []GDELTArticle `json:"articles"`
}

// GDELTArticle mirrors one record of the DOC 2.0 API's json format. Tone is
// only present on some result modes, so consumers must not rely on it.
type GDELTArticle struct {
	URL            string  `json:"url"`
	Title          string  `json:"title"`
	SeenDate       string  `json:"seendate"`
	SocialImage    string  `json:"socialimage"`
	Domain         string  `json:"domain"`
	Language       string  `json:"language"`
	SourceCountry  string  `json:"sourcecountry"`
	SEODescription string  `json:"seo_description"`
	Tone           float64 `json:"tone"`
}
