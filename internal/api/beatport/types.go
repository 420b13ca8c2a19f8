package beatport

// Candidate is one track from the search results, reduced to the fields the
// matcher scores.
type Candidate struct {
	TrackName string
	MixName   string
	Artists   []string
	Genres    []string
}

// Wire types for the embedded __NEXT_DATA__ payload. Every level is a
// pointer so a missing key is distinguishable from an empty value; the
// fixed navigation path is
// props.pageProps.dehydratedState.queries[0].state.data.data.
type nextData struct {
	Props *pageWrapper `json:"props"`
}

type pageWrapper struct {
	PageProps *pageProps `json:"pageProps"`
}

type pageProps struct {
	DehydratedState *dehydratedState `json:"dehydratedState"`
}

type dehydratedState struct {
	Queries []query `json:"queries"`
}

type query struct {
	State *queryResult `json:"state"`
}

type queryResult struct {
	Data *resultData `json:"data"`
}

type resultData struct {
	Data *[]searchTrack `json:"data"`
}

type searchTrack struct {
	TrackName string        `json:"track_name"`
	MixName   string        `json:"mix_name"`
	Artists   []trackArtist `json:"artists"`
	Genre     []trackGenre  `json:"genre"`
}

type trackArtist struct {
	ArtistName string `json:"artist_name"`
}

type trackGenre struct {
	GenreName string `json:"genre_name"`
}
