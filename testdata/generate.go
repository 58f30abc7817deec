package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"strings"
)

type play struct {
	EndTime  string
	Artist   string
	Track    string
	MsPlayed int
}

// render lays plays out like the short streaming-history export.
func render(plays []play) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i, p := range plays {
		sb.WriteString("  {\n")
		fmt.Fprintf(&sb, "    \"endTime\" : \"%s\",\n", p.EndTime)
		fmt.Fprintf(&sb, "    \"artistName\" : \"%s\",\n", p.Artist)
		fmt.Fprintf(&sb, "    \"trackName\" : \"%s\",\n", p.Track)
		fmt.Fprintf(&sb, "    \"msPlayed\" : %d\n", p.MsPlayed)
		if i < len(plays)-1 {
			sb.WriteString("  },\n")
		} else {
			sb.WriteString("  }\n")
		}
	}
	sb.WriteString("]\n")
	return sb.String()
}

func main() {
	first := []play{
		{EndTime: "2023-01-05 10:00", Artist: "Daft Punk", Track: "One More Time", MsPlayed: 320000},
		{EndTime: "2023-01-20 11:30", Artist: "Air", Track: "Sexy Boy", MsPlayed: 2000},
		{EndTime: "2023-02-01 00:00", Artist: "Daft Punk", Track: "Digital Love", MsPlayed: 301000},
	}
	second := []play{
		{EndTime: "2023-02-14 21:15", Artist: "Justice", Track: "D.A.N.C.E.", MsPlayed: 242000},
		{EndTime: "2023-03-09 17:20", Artist: "Air", Track: "La Femme d'Argent", MsPlayed: 298000},
	}

	if err := os.WriteFile("StreamingHistory0.json", []byte(render(first)), 0o644); err != nil {
		log.Fatal(err)
	}

	file, err := os.Create("StreamingHistory1.json.gz")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	zw := gzip.NewWriter(file)
	if _, err := zw.Write([]byte(render(second))); err != nil {
		log.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated StreamingHistory0.json and StreamingHistory1.json.gz with 5 plays")
}
