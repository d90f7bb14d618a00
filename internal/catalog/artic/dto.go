package artic

// artworksResponse is the envelope returned by GET /artworks
type artworksResponse struct {
	Pagination pagination    `json:"pagination"`
	Data       *[]artworkDTO `json:"data"`
}

// pagination is the API's pagination block
type pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// artworkDTO is one entry of the data array. Most attributes can be null.
type artworkDTO struct {
	ID            int     `json:"id"`
	Title         *string `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay *string `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
	Description   *string `json:"description"`
}

// requestedFields trims the payload to the attributes the browser shows
const requestedFields = "id,title,place_of_origin,artist_display,inscriptions,date_start,date_end,description"
