package chess

import "testing"

func shapeOf(t *testing.T, from, to string) MoveShape {
	t.Helper()
	s, err := ShapeFromPositions(sq(from), sq(to))
	if err != nil {
		t.Fatalf("ShapeFromPositions(%s, %s) error: %v", from, to, err)
	}
	return s
}

func TestPiece_ShapeAllowed(t *testing.T) {
	tests := []struct {
		name     string
		piece    Piece
		from, to string
		want     bool
	}{
		{"rook straight", W(Rook), "a1", "a8", true},
		{"rook diagonal", W(Rook), "a1", "h8", false},
		{"bishop diagonal", B(Bishop), "c8", "h3", true},
		{"bishop straight", B(Bishop), "c8", "c1", false},
		{"queen straight", W(Queen), "d1", "d7", true},
		{"queen diagonal", W(Queen), "d1", "h5", true},
		{"queen knight", W(Queen), "d1", "e3", false},
		{"knight leap", B(Knight), "b8", "c6", true},
		{"knight straight", B(Knight), "b8", "b6", false},
		{"king step", W(King), "e1", "f2", true},
		{"king castling shape", W(King), "e1", "g1", true},
		{"king three squares", W(King), "e1", "b1", false},
		{"king diagonal two", W(King), "e1", "g3", false},
		{"white pawn push", W(Pawn), "e2", "e3", true},
		{"white pawn double", W(Pawn), "e2", "e4", true},
		{"white pawn triple", W(Pawn), "e2", "e5", false},
		{"white pawn backwards", W(Pawn), "e3", "e2", false},
		{"white pawn capture shape", W(Pawn), "e4", "d5", true},
		{"white pawn backwards diagonal", W(Pawn), "e4", "d3", false},
		{"white pawn sideways", W(Pawn), "e4", "f4", false},
		{"black pawn push", B(Pawn), "e7", "e6", true},
		{"black pawn upwards", B(Pawn), "e6", "e7", false},
		{"black pawn capture shape", B(Pawn), "e5", "f4", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.piece.ShapeAllowed(shapeOf(t, tt.from, tt.to)); got != tt.want {
				t.Errorf("%v.ShapeAllowed(%s-%s) = %v, want %v", tt.piece, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPiece_ValidatePawnRules(t *testing.T) {
	tests := []struct {
		name      string
		piece     Piece
		from, to  string
		isCapture bool
		want      bool
	}{
		{"single push", W(Pawn), "e3", "e4", false, true},
		{"double push from start", W(Pawn), "e2", "e4", false, true},
		{"double push off start", W(Pawn), "e3", "e5", false, false},
		{"black double push from start", B(Pawn), "d7", "d5", false, true},
		{"black double push off start", B(Pawn), "d6", "d4", false, false},
		{"diagonal capture", W(Pawn), "e4", "d5", true, true},
		{"diagonal non-capture", W(Pawn), "e4", "d5", false, false},
		{"straight capture", W(Pawn), "e4", "e5", true, false},
		{"not a pawn", W(Rook), "e2", "e3", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMove(sq(tt.from), sq(tt.to))
			if got := tt.piece.ValidatePawnRules(m, tt.isCapture); got != tt.want {
				t.Errorf("ValidatePawnRules(%s, %v) = %v, want %v", m, tt.isCapture, got, tt.want)
			}
		})
	}
}

func TestCastlingRights(t *testing.T) {
	r := AllCastlingRights()
	if r.String() != "KQkq" {
		t.Errorf("AllCastlingRights().String() = %q, want KQkq", r.String())
	}

	r.DisableRook(White, Queenside)
	if r.CanCastle(White, Queenside) || !r.CanCastle(White, Kingside) {
		t.Errorf("after DisableRook(White, Queenside): %q", r.String())
	}

	r.DisableKing(Black)
	if r.CanCastle(Black, Kingside) || r.CanCastle(Black, Queenside) {
		t.Errorf("after DisableKing(Black): %q", r.String())
	}
	if r.String() != "K" {
		t.Errorf("String() = %q, want K", r.String())
	}

	if got := (CastlingRights{}).String(); got != "-" {
		t.Errorf("empty rights String() = %q, want -", got)
	}
}

func TestPieceFromLetter(t *testing.T) {
	for _, c := range []byte("PNBRQKpnbrqk") {
		p, ok := PieceFromLetter(c)
		if !ok {
			t.Errorf("PieceFromLetter(%c) not ok", c)
			continue
		}
		if p.Letter() != c {
			t.Errorf("PieceFromLetter(%c).Letter() = %c", c, p.Letter())
		}
	}
	for _, c := range []byte("xX1 /") {
		if _, ok := PieceFromLetter(c); ok {
			t.Errorf("PieceFromLetter(%q) ok, want rejection", c)
		}
	}
}
