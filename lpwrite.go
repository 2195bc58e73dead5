package slotting

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// WriteLP writes the model to path in the LP text format, for inspection
// with external tooling. The file is a debugging artifact; nothing in
// this package ever reads it back.
func (m *Model) WriteLP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := m.WriteTo(f); err != nil {
		return err
	}
	return f.Sync()
}

// WriteTo writes the model in LP format to w.
func (m *Model) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\\ %s: %d variables, %d constraints\n", m.Name, len(m.Vars), len(m.Constrs))
	fmt.Fprintln(bw, "Minimize")
	fmt.Fprint(bw, " obj:")
	first := true
	for _, v := range m.Vars {
		if v.Obj == 0 {
			continue
		}
		writeTerm(bw, &first, v.Obj, v.Name)
	}
	if first {
		fmt.Fprint(bw, " 0")
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Subject To")
	for _, c := range m.Constrs {
		fmt.Fprintf(bw, " %s:", c.Name)
		first = true
		for i, idx := range c.Ind {
			writeTerm(bw, &first, c.Val[i], m.Vars[idx].Name)
		}
		fmt.Fprintf(bw, " %s %s\n", senseToken(c.Sense), ftoa(c.RHS))
	}

	fmt.Fprintln(bw, "Bounds")
	for _, v := range m.Vars {
		if v.Type == Binary {
			continue
		}
		switch {
		case math.IsInf(v.Lower, -1) && math.IsInf(v.Upper, 1):
			fmt.Fprintf(bw, " %s free\n", v.Name)
		default:
			fmt.Fprintf(bw, " %s <= %s <= %s\n", ftoa(v.Lower), v.Name, ftoa(v.Upper))
		}
	}

	fmt.Fprintln(bw, "Binaries")
	line := 0
	for _, v := range m.Vars {
		if v.Type != Binary {
			continue
		}
		fmt.Fprintf(bw, " %s", v.Name)
		line++
		if line%8 == 0 {
			fmt.Fprintln(bw)
		}
	}
	if line%8 != 0 {
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "End")
	return bw.Flush()
}

func writeTerm(w io.Writer, first *bool, coef float64, name string) {
	sign := "+"
	if coef < 0 {
		sign = "-"
		coef = -coef
	}
	if *first {
		*first = false
		if sign == "+" {
			sign = ""
		} else {
			sign = "-"
		}
		fmt.Fprintf(w, " %s%s %s", sign, ftoa(coef), name)
		return
	}
	fmt.Fprintf(w, " %s %s %s", sign, ftoa(coef), name)
}

func senseToken(sense int8) string {
	switch sense {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	default:
		return "="
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
