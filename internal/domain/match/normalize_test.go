package match

import "testing"

func TestNormalize_AliasPriority(t *testing.T) {
	t.Run("canonical fields win over aliases", func(t *testing.T) {
		raw := RawGame{
			"homeTeam": "Les Invincibles",
			"home":     "Wrong Team",
			"awayTeam": "Real Fantasy",
			"a":        "Also Wrong",
		}

		game := raw.Normalize()
		if game.HomeTeam != "Les Invincibles" {
			t.Fatalf("unexpected home team: %q", game.HomeTeam)
		}
		if game.AwayTeam != "Real Fantasy" {
			t.Fatalf("unexpected away team: %q", game.AwayTeam)
		}
	})

	t.Run("legacy equipe fields resolve", func(t *testing.T) {
		raw := RawGame{
			"equipe1":   "Dream United",
			"equipe2":   "AC Pixel",
			"scoreHome": 3,
			"scoreAway": 1,
		}

		game := raw.Normalize()
		if game.HomeTeam != "Dream United" || game.AwayTeam != "AC Pixel" {
			t.Fatalf("unexpected teams: %q vs %q", game.HomeTeam, game.AwayTeam)
		}
		if !game.Played() {
			t.Fatalf("expected game to be played")
		}
		if *game.HomeScore != 3 || *game.AwayScore != 1 {
			t.Fatalf("unexpected scores: %d-%d", *game.HomeScore, *game.AwayScore)
		}
	})

	t.Run("whitespace only name yields empty", func(t *testing.T) {
		raw := RawGame{"homeTeam": "   ", "home": "Olympique Virtuel"}
		game := raw.Normalize()
		if game.HomeTeam != "Olympique Virtuel" {
			t.Fatalf("expected fallback to next alias, got %q", game.HomeTeam)
		}
	})
}

func TestNormalize_ScoreParsing(t *testing.T) {
	t.Run("json numbers decode as float64", func(t *testing.T) {
		raw := RawGame{"homeTeam": "A", "awayTeam": "B", "homeScore": float64(2), "awayScore": float64(0)}
		game := raw.Normalize()
		if !game.Played() || *game.HomeScore != 2 || *game.AwayScore != 0 {
			t.Fatalf("unexpected normalized game: %+v", game)
		}
	})

	t.Run("string scores from old exports", func(t *testing.T) {
		raw := RawGame{"homeTeam": "A", "awayTeam": "B", "hs": " 4 ", "as": "2"}
		game := raw.Normalize()
		if !game.Played() || *game.HomeScore != 4 || *game.AwayScore != 2 {
			t.Fatalf("unexpected normalized game: %+v", game)
		}
	})

	t.Run("fractional score marks game unplayed", func(t *testing.T) {
		raw := RawGame{"homeTeam": "A", "awayTeam": "B", "homeScore": 1.5, "awayScore": 0}
		game := raw.Normalize()
		if game.Played() {
			t.Fatalf("expected unplayed game, got scores %v / %v", game.HomeScore, game.AwayScore)
		}
	})

	t.Run("missing scores mark game unplayed", func(t *testing.T) {
		raw := RawGame{"homeTeam": "A", "awayTeam": "B"}
		game := raw.Normalize()
		if game.Played() {
			t.Fatalf("expected unplayed game")
		}
	})

	t.Run("unparsable string score", func(t *testing.T) {
		raw := RawGame{"homeTeam": "A", "awayTeam": "B", "homeScore": "forfait", "awayScore": 0}
		game := raw.Normalize()
		if game.HomeScore != nil {
			t.Fatalf("expected nil home score, got %d", *game.HomeScore)
		}
	})
}

func TestFromGame_RoundTrip(t *testing.T) {
	home, away := 2, 2
	game := Game{HomeTeam: "A", AwayTeam: "B", HomeScore: &home, AwayScore: &away}

	back := FromGame(game).Normalize()
	if back.HomeTeam != "A" || back.AwayTeam != "B" {
		t.Fatalf("unexpected teams after round trip: %+v", back)
	}
	if !back.Played() || *back.HomeScore != 2 || *back.AwayScore != 2 {
		t.Fatalf("unexpected scores after round trip: %+v", back)
	}
}

func TestScored_Helpers(t *testing.T) {
	item := Scored{HomeTeam: "A", AwayTeam: "B", HomeScore: 1, AwayScore: 4}
	if item.TotalGoals() != 5 {
		t.Fatalf("unexpected total goals: %d", item.TotalGoals())
	}
	if item.Margin() != 3 {
		t.Fatalf("unexpected margin: %d", item.Margin())
	}
	if item.Winner() != "B" {
		t.Fatalf("unexpected winner: %q", item.Winner())
	}

	draw := Scored{HomeTeam: "A", AwayTeam: "B", HomeScore: 2, AwayScore: 2}
	if draw.Winner() != "" {
		t.Fatalf("expected no winner on a draw, got %q", draw.Winner())
	}
}
