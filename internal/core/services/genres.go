package services

// fallbackGenres is the embedded seed-genre list used when the catalog's
// vocabulary endpoint is unavailable. Stale entries are acceptable here;
// genre membership only steers search queries.
var fallbackGenres = []string{
	"acoustic", "afrobeat", "alt-rock", "alternative", "ambient", "anime",
	"bluegrass", "blues", "bossanova", "brazil", "breakbeat", "british",
	"cantopop", "chill", "classical", "club", "country", "dance",
	"dancehall", "death-metal", "deep-house", "disco", "drum-and-bass",
	"dub", "electronic", "emo", "folk", "french", "funk", "garage",
	"german", "gospel", "goth", "grunge", "happy", "hard-rock", "hardcore",
	"heavy-metal", "hip-hop", "holidays", "house", "indian", "indie",
	"indie-pop", "industrial", "j-pop", "j-rock", "jazz", "k-pop", "latin",
	"metal", "metalcore", "movies", "opera", "party", "piano", "pop",
	"power-pop", "progressive-house", "psych-rock", "punk", "punk-rock",
	"r-n-b", "reggae", "reggaeton", "road-trip", "rock", "rock-n-roll",
	"rockabilly", "romance", "sad", "salsa", "samba", "sertanejo",
	"show-tunes", "singer-songwriter", "ska", "sleep", "soul",
	"soundtracks", "spanish", "study", "summer", "synth-pop", "tango",
	"techno", "trance", "trip-hop", "work-out", "world-music",
}
