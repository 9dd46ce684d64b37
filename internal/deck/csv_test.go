package deck

import "testing"

func TestParseTableQuotedComma(t *testing.T) {
	rows := ParseTable("theme,tier,label_fr\nolemots,1,\"a, b\"\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if got := rows[1][2]; got != "a, b" {
		t.Fatalf("quoted comma field broken: %q", got)
	}
}

func TestParseTableEmbeddedNewlineAndEscape(t *testing.T) {
	rows := ParseTable("a,b\n\"line1\nline2\",\"he said \"\"hi\"\"\"\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "line1\nline2" {
		t.Fatalf("embedded newline lost: %q", rows[1][0])
	}
	if rows[1][1] != `he said "hi"` {
		t.Fatalf("doubled-quote escape broken: %q", rows[1][1])
	}
}

func TestParseTableNoTrailingNewline(t *testing.T) {
	rows := ParseTable("a,b\n1,2")
	if len(rows) != 2 {
		t.Fatalf("final unterminated row dropped: %v", rows)
	}
	if rows[1][1] != "2" {
		t.Fatalf("got %q", rows[1][1])
	}
}

func TestParseTableCarriageReturns(t *testing.T) {
	rows := ParseTable("a,b\r\n1,2\r\n")
	if len(rows) != 2 || rows[0][1] != "b" || rows[1][1] != "2" {
		t.Fatalf("CRLF input mishandled: %v", rows)
	}
}

func TestParseTableEmpty(t *testing.T) {
	if rows := ParseTable(""); len(rows) != 0 {
		t.Fatalf("empty input should yield no rows, got %v", rows)
	}
}

func TestNewTableDropsBlankAndUnkeyedRows(t *testing.T) {
	cells := ParseTable("Theme,tier,,label_fr\nolemots,1,junk,chat\n , , , \n,2,,orphelin\n")
	tab := NewTable(cells, "theme")
	if len(tab.Rows) != 1 {
		t.Fatalf("expected 1 surviving row, got %d", len(tab.Rows))
	}
	row := tab.Rows[0]
	if row["theme"] != "olemots" || row["label_fr"] != "chat" {
		t.Fatalf("unexpected row %v", row)
	}
	if _, ok := row[""]; ok {
		t.Fatalf("empty header cell should drop its column")
	}
}

func TestNewTableLowercasesHeader(t *testing.T) {
	tab := NewTable(ParseTable("THEME,Tier,Label_FR\nolemots,1,chat\n"), "theme")
	if !tab.HasColumns("theme", "tier", "label_fr") {
		t.Fatalf("header not normalized: %v", tab.Header)
	}
	if tab.HasColumns("theme", "missing") {
		t.Fatalf("HasColumns should fail on a missing column")
	}
}
