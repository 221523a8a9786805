package schema

// standardFields is the ordered tail of fields shared by every item type.
var standardFields = []string{
	"abstractNote",
	"date",
	"language",
	"shortTitle",
	"url",
	"accessDate",
	"archive",
	"archiveLocation",
	"libraryCatalog",
	"callNumber",
	"rights",
	"extra",
}

// standardFieldSet indexes standardFields for IsStandardField.
var standardFieldSet = func() map[string]bool {
	set := make(map[string]bool, len(standardFields))
	for _, f := range standardFields {
		set[f] = true
	}
	return set
}()

// dateFields lists the fields edited and validated as calendar dates.
var dateFields = map[string]bool{
	"date":       true,
	"accessDate": true,
	"filingDate": true,
	"issueDate":  true,
}

// withStandard builds a type's full ordered field list from its specific
// fields followed by the shared standard tail.
func withStandard(specific ...string) []string {
	out := make([]string, 0, len(specific)+len(standardFields))
	out = append(out, specific...)
	out = append(out, standardFields...)
	return out
}

// itemTypes lists every item type in schema order. The first creator type of
// each entry is the type's primary creator slot.
var itemTypes = []*ItemType{
	{
		name: "book",
		fields: withStandard(
			"title", "series", "seriesNumber", "volume", "numberOfVolumes",
			"edition", "place", "publisher", "numPages", "ISBN",
		),
		creatorTypes: []string{"author", "contributor", "editor", "seriesEditor", "translator"},
	},
	{
		name: "bookSection",
		fields: withStandard(
			"title", "bookTitle", "series", "seriesNumber", "volume",
			"numberOfVolumes", "edition", "place", "publisher", "pages", "ISBN",
		),
		creatorTypes: []string{"author", "bookAuthor", "contributor", "editor", "seriesEditor", "translator"},
	},
	{
		name: "journalArticle",
		fields: withStandard(
			"title", "publicationTitle", "volume", "issue", "pages", "series",
			"seriesTitle", "seriesText", "journalAbbreviation", "DOI", "ISSN",
		),
		creatorTypes: []string{"author", "contributor", "editor", "reviewedAuthor", "translator"},
	},
	{
		name: "magazineArticle",
		fields: withStandard(
			"title", "publicationTitle", "volume", "issue", "pages", "ISSN",
		),
		creatorTypes: []string{"author", "contributor", "reviewedAuthor", "translator"},
	},
	{
		name: "newspaperArticle",
		fields: withStandard(
			"title", "publicationTitle", "place", "edition", "section", "pages", "ISSN",
		),
		creatorTypes: []string{"author", "contributor", "reviewedAuthor", "translator"},
	},
	{
		name: "conferencePaper",
		fields: withStandard(
			"title", "proceedingsTitle", "conferenceName", "place", "publisher",
			"volume", "pages", "series", "DOI", "ISBN",
		),
		creatorTypes: []string{"author", "contributor", "editor", "seriesEditor", "translator"},
	},
	{
		name: "thesis",
		fields: withStandard(
			"title", "thesisType", "university", "place", "numPages",
		),
		creatorTypes: []string{"author", "contributor"},
	},
	{
		name: "report",
		fields: withStandard(
			"title", "reportNumber", "reportType", "seriesTitle", "place",
			"institution", "pages",
		),
		creatorTypes: []string{"author", "contributor", "seriesEditor", "translator"},
	},
	{
		name: "manuscript",
		fields: withStandard(
			"title", "manuscriptType", "place", "numPages",
		),
		creatorTypes: []string{"author", "contributor", "translator"},
	},
	{
		name: "letter",
		fields: withStandard(
			"title", "letterType",
		),
		creatorTypes: []string{"author", "recipient", "contributor"},
	},
	{
		name: "interview",
		fields: withStandard(
			"title", "interviewMedium",
		),
		creatorTypes: []string{"interviewee", "interviewer", "contributor", "translator"},
	},
	{
		name: "film",
		fields: withStandard(
			"title", "distributor", "genre", "videoRecordingFormat", "runningTime",
		),
		creatorTypes: []string{"director", "producer", "scriptwriter", "contributor"},
	},
	{
		name: "artwork",
		fields: withStandard(
			"title", "artworkMedium", "artworkSize",
		),
		creatorTypes: []string{"artist", "contributor"},
	},
	{
		name: "webpage",
		fields: withStandard(
			"title", "websiteTitle", "websiteType",
		),
		creatorTypes: []string{"author", "contributor", "translator"},
	},
	{
		name: "blogPost",
		fields: withStandard(
			"title", "blogTitle", "websiteType",
		),
		creatorTypes: []string{"author", "commenter", "contributor"},
	},
	{
		name: "presentation",
		fields: withStandard(
			"title", "presentationType", "place", "meetingName",
		),
		creatorTypes: []string{"presenter", "contributor"},
	},
}

// itemTypesByName indexes itemTypes by code for TypeByName.
var itemTypesByName = func() map[string]*ItemType {
	byName := make(map[string]*ItemType, len(itemTypes))
	for _, t := range itemTypes {
		byName[t.name] = t
	}
	return byName
}()

// itemTypeNames maps item type codes to display names.
var itemTypeNames = map[string]string{
	"book":             "Book",
	"bookSection":      "Book Section",
	"journalArticle":   "Journal Article",
	"magazineArticle":  "Magazine Article",
	"newspaperArticle": "Newspaper Article",
	"conferencePaper":  "Conference Paper",
	"thesis":           "Thesis",
	"report":           "Report",
	"manuscript":       "Manuscript",
	"letter":           "Letter",
	"interview":        "Interview",
	"film":             "Film",
	"artwork":          "Artwork",
	"webpage":          "Web Page",
	"blogPost":         "Blog Post",
	"presentation":     "Presentation",
}

// creatorTypeNames maps creator-type codes to display names.
var creatorTypeNames = map[string]string{
	"author":         "Author",
	"contributor":    "Contributor",
	"editor":         "Editor",
	"seriesEditor":   "Series Editor",
	"translator":     "Translator",
	"bookAuthor":     "Book Author",
	"reviewedAuthor": "Reviewed Author",
	"recipient":      "Recipient",
	"interviewee":    "Interview With",
	"interviewer":    "Interviewer",
	"director":       "Director",
	"producer":       "Producer",
	"scriptwriter":   "Scriptwriter",
	"artist":         "Artist",
	"commenter":      "Commenter",
	"presenter":      "Presenter",
}

// fieldNames maps field codes to display names. Includes the synthetic
// itemType pseudo-field so field editors can label their first row.
var fieldNames = map[string]string{
	FieldItemType: "Item Type",

	// Standard fields.
	"abstractNote":    "Abstract",
	"date":            "Date",
	"language":        "Language",
	"shortTitle":      "Short Title",
	"url":             "URL",
	"accessDate":      "Accessed",
	"archive":         "Archive",
	"archiveLocation": "Loc. in Archive",
	"libraryCatalog":  "Library Catalog",
	"callNumber":      "Call Number",
	"rights":          "Rights",
	"extra":           "Extra",

	// Type-specific fields.
	"title":                "Title",
	"series":               "Series",
	"seriesNumber":         "Series Number",
	"seriesTitle":          "Series Title",
	"seriesText":           "Series Text",
	"volume":               "Volume",
	"numberOfVolumes":      "# of Volumes",
	"edition":              "Edition",
	"place":                "Place",
	"publisher":            "Publisher",
	"numPages":             "# of Pages",
	"pages":                "Pages",
	"ISBN":                 "ISBN",
	"ISSN":                 "ISSN",
	"DOI":                  "DOI",
	"bookTitle":            "Book Title",
	"publicationTitle":     "Publication",
	"issue":                "Issue",
	"journalAbbreviation":  "Journal Abbr",
	"section":              "Section",
	"proceedingsTitle":     "Proceedings Title",
	"conferenceName":       "Conference Name",
	"thesisType":           "Type",
	"university":           "University",
	"reportNumber":         "Report Number",
	"reportType":           "Report Type",
	"institution":          "Institution",
	"manuscriptType":       "Type",
	"letterType":           "Type",
	"interviewMedium":      "Medium",
	"distributor":          "Distributor",
	"genre":                "Genre",
	"videoRecordingFormat": "Format",
	"runningTime":          "Running Time",
	"artworkMedium":        "Medium",
	"artworkSize":          "Artwork Size",
	"websiteTitle":         "Website Title",
	"websiteType":          "Website Type",
	"blogTitle":            "Blog Title",
	"presentationType":     "Type",
	"meetingName":          "Meeting Name",
	"filingDate":           "Filing Date",
	"issueDate":            "Issue Date",
}
