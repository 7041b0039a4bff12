package input

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	toSeparator  = "-to-"
)

// ParseFile parses the almanac stored at path.
func ParseFile(path string) (*Almanac, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open almanac")
	}
	defer file.Close()

	almanac, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return almanac, nil
}

// ParseString parses an almanac held in memory.
func ParseString(src string) (*Almanac, error) {
	return Parse(strings.NewReader(src))
}

// Parse reads an almanac and checks that its blocks form a single chain
// starting from the seed category.
func Parse(r io.Reader) (*Almanac, error) {
	var (
		almanac   Almanac
		seenSeeds bool
		block     *Block
		lineNo    int
	)

	flush := func() error {
		if block == nil {
			return nil
		}
		if len(block.Triples) == 0 {
			return errors.Errorf("line %d: map %q has no entries", block.Line, block.Name())
		}
		almanac.Blocks = append(almanac.Blocks, *block)
		block = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}

		case !seenSeeds:
			seeds, err := parseSeeds(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			almanac.Seeds = seeds
			seenSeeds = true

		case strings.HasSuffix(line, headerSuffix):
			if err := flush(); err != nil {
				return nil, err
			}
			from, to, err := parseHeader(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			block = &Block{From: from, To: to, Line: lineNo}

		default:
			if block == nil {
				return nil, errors.Errorf("line %d: mapping line outside of a map block", lineNo)
			}
			triple, err := parseTriple(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			triple.Line = lineNo
			block.Triples = append(block.Triples, triple)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read almanac")
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if !seenSeeds {
		return nil, errors.New("missing seeds line")
	}
	if err := validateChain(almanac.Blocks); err != nil {
		return nil, err
	}

	return &almanac, nil
}

func parseSeeds(line string) ([]uint64, error) {
	if !strings.HasPrefix(line, seedsPrefix) {
		return nil, errors.Errorf("expected %q, got %q", seedsPrefix, line)
	}

	seeds, err := parseNumbers(strings.TrimPrefix(line, seedsPrefix))
	if err != nil {
		return nil, errors.Wrap(err, "invalid seeds")
	}
	if len(seeds) == 0 {
		return nil, errors.New("no seeds listed")
	}
	return seeds, nil
}

func parseHeader(line string) (string, string, error) {
	name := strings.TrimSuffix(line, headerSuffix)
	from, to, ok := strings.Cut(name, toSeparator)
	if !ok || from == "" || to == "" {
		return "", "", errors.Errorf("invalid map header %q", line)
	}
	return from, to, nil
}

func parseTriple(line string) (Triple, error) {
	numbers, err := parseNumbers(line)
	if err != nil {
		return Triple{}, errors.Wrap(err, "invalid mapping line")
	}
	if len(numbers) != 3 {
		return Triple{}, errors.Errorf("expected 3 numbers in mapping line, got %d", len(numbers))
	}
	return Triple{Destination: numbers[0], Source: numbers[1], Length: numbers[2]}, nil
}

func parseNumbers(field string) ([]uint64, error) {
	fields := strings.Fields(field)
	numbers := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", f)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func validateChain(blocks []Block) error {
	if len(blocks) == 0 {
		return errors.New("almanac has no map blocks")
	}

	expected := SeedCategory
	for _, b := range blocks {
		if b.From != expected {
			return errors.Errorf("line %d: map %q references an undefined mapping, expected one from %q", b.Line, b.Name(), expected)
		}
		expected = b.To
	}
	return nil
}
