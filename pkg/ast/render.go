package ast

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Canonical textual renderings. Parsing a rendering yields the original value
// back (NaN excepted), so these are the round-trip form of each literal.

func (Null) String() string {
	return "null"
}

func (b Boolean) String() string {
	return strconv.FormatBool(b.Value)
}

func (i Integer) String() string {
	return strconv.FormatInt(i.Value, 10)
}

func (f Float) String() string {
	switch {
	case math.IsNaN(f.Value):
		return "NaN"
	case math.IsInf(f.Value, 1):
		return "INF"
	case math.IsInf(f.Value, -1):
		return "-INF"
	}
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		// Keep the rendering in Float territory: a bare digit run would
		// re-parse as an Integer.
		s += ".0"
	}
	return s
}

func (s String) String() string {
	return "'" + strings.ReplaceAll(s.Value, "'", "''") + "'"
}

func (g GUID) String() string {
	return g.Value
}

func (d Date) String() string {
	y, sign := d.Year, ""
	if y < 0 {
		sign, y = "-", -y
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, y, d.Month, d.Day)
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond > 0 {
		s += "." + strings.TrimRight(fmt.Sprintf("%09d", t.Nanosecond), "0")
	}
	return s
}

func (d DateTimeOffset) String() string {
	s := d.Date.String() + "T" + d.Time.String()
	if d.Offset == 0 {
		return s + "Z"
	}
	o, sign := d.Offset, "+"
	if o < 0 {
		sign, o = "-", -o
	}
	return s + fmt.Sprintf("%s%02d:%02d", sign, o/60, o%60)
}

func (d Duration) String() string {
	v := d.Value
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	days := v / (24 * time.Hour)
	v -= days * 24 * time.Hour
	hours := v / time.Hour
	v -= hours * time.Hour
	mins := v / time.Minute
	v -= mins * time.Minute
	secs := v / time.Second
	nanos := v - secs*time.Second

	var b strings.Builder
	b.WriteString("duration'")
	b.WriteString(sign)
	b.WriteByte('P')
	if days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}
	if hours > 0 || mins > 0 || secs > 0 || nanos > 0 {
		b.WriteByte('T')
		if hours > 0 {
			fmt.Fprintf(&b, "%dH", hours)
		}
		if mins > 0 {
			fmt.Fprintf(&b, "%dM", mins)
		}
		if secs > 0 || nanos > 0 {
			fmt.Fprintf(&b, "%d", secs)
			if nanos > 0 {
				b.WriteString("." + strings.TrimRight(fmt.Sprintf("%09d", nanos), "0"))
			}
			b.WriteByte('S')
		}
	} else if days == 0 {
		b.WriteString("T0S")
	}
	b.WriteByte('\'')
	return b.String()
}

func (b Binary) String() string {
	return "binary'" + base64.URLEncoding.EncodeToString(b.Data) + "'"
}

func (i Identifier) String() string {
	return i.Name
}

func (q Qualified) String() string {
	return strings.Join(q.Parts, ".")
}
