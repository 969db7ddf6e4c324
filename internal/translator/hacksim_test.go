package translator

// A minimal Hack CPU interpreter used only by this package's tests to
// execute emitted assembly directly and check its runtime behavior. It is
// deliberately not 16-bit-wrapped: the scenarios under test never produce
// values outside plain int range, and this module never encodes assembly
// to binary.

import (
	"strconv"
	"strings"
)

type hackInstr struct {
	isA                  bool
	target               string
	dest, comp, jumpKind string
}

type hackSim struct {
	instr  []hackInstr
	labels map[string]int
	vars   map[string]int
	nextVar int
	mem    map[int]int
	a, d, pc int
}

func newHackSim(asm string) *hackSim {
	s := &hackSim{
		labels:  map[string]int{},
		vars:    map[string]int{"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4},
		nextVar: 16,
		mem:     map[int]int{},
	}
	for _, raw := range strings.Split(asm, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")") {
			s.labels[line[1:len(line)-1]] = len(s.instr)
			continue
		}
		if strings.HasPrefix(line, "@") {
			s.instr = append(s.instr, hackInstr{isA: true, target: line[1:]})
			continue
		}
		s.instr = append(s.instr, parseCInstruction(line))
	}
	return s
}

func parseCInstruction(line string) hackInstr {
	dest := ""
	rest := line
	if idx := strings.Index(rest, "="); idx >= 0 {
		dest = rest[:idx]
		rest = rest[idx+1:]
	}
	comp := rest
	jump := ""
	if idx := strings.Index(rest, ";"); idx >= 0 {
		comp = rest[:idx]
		jump = rest[idx+1:]
	}
	return hackInstr{dest: dest, comp: comp, jumpKind: jump}
}

func (s *hackSim) resolveAddr(token string) int {
	if n, err := strconv.Atoi(token); err == nil {
		return n
	}
	if idx, ok := s.labels[token]; ok {
		return idx
	}
	if addr, ok := s.vars[token]; ok {
		return addr
	}
	addr := s.nextVar
	s.vars[token] = addr
	s.nextVar++
	return addr
}

func (s *hackSim) evalComp(comp string) int {
	a, d, m := s.a, s.d, s.mem[s.a]
	switch comp {
	case "0":
		return 0
	case "1":
		return 1
	case "-1":
		return -1
	case "D":
		return d
	case "A":
		return a
	case "M":
		return m
	case "!D":
		return ^d
	case "!A":
		return ^a
	case "!M":
		return ^m
	case "-D":
		return -d
	case "-A":
		return -a
	case "-M":
		return -m
	case "D+1", "1+D":
		return d + 1
	case "A+1", "1+A":
		return a + 1
	case "M+1", "1+M":
		return m + 1
	case "D-1":
		return d - 1
	case "A-1":
		return a - 1
	case "M-1":
		return m - 1
	case "D+A", "A+D":
		return d + a
	case "D+M", "M+D":
		return d + m
	case "D-A":
		return d - a
	case "A-D":
		return a - d
	case "D-M":
		return d - m
	case "M-D":
		return m - d
	case "D&A", "A&D":
		return d & a
	case "D&M", "M&D":
		return d & m
	case "D|A", "A|D":
		return d | a
	case "D|M", "M|D":
		return d | m
	default:
		panic("hacksim: unsupported comp " + comp)
	}
}

func (s *hackSim) assignDest(dest string, val int) {
	oldA := s.a
	if strings.Contains(dest, "M") {
		s.mem[oldA] = val
	}
	if strings.Contains(dest, "A") {
		s.a = val
	}
	if strings.Contains(dest, "D") {
		s.d = val
	}
}

func shouldJump(jump string, val int) bool {
	switch jump {
	case "":
		return false
	case "JGT":
		return val > 0
	case "JEQ":
		return val == 0
	case "JGE":
		return val >= 0
	case "JLT":
		return val < 0
	case "JNE":
		return val != 0
	case "JLE":
		return val <= 0
	case "JMP":
		return true
	default:
		panic("hacksim: unsupported jump " + jump)
	}
}

// Run executes up to maxSteps instructions. Programs ending in the
// terminator's self-loop (or an OS-less Sys.init that never returns)
// simply spin until the budget is exhausted; callers pick a budget large
// enough to reach the assertions they care about.
func (s *hackSim) Run(maxSteps int) {
	for steps := 0; steps < maxSteps; steps++ {
		if s.pc < 0 || s.pc >= len(s.instr) {
			return
		}

		in := s.instr[s.pc]
		if in.isA {
			s.a = s.resolveAddr(in.target)
			s.pc++
			continue
		}
		val := s.evalComp(in.comp)
		s.assignDest(in.dest, val)
		if shouldJump(in.jumpKind, val) {
			s.pc = s.a
		} else {
			s.pc++
		}
	}
}
