// Package conf loads run configuration files. Values from a file fill in
// command flags that were not given on the command line.
package conf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gonuts/flag"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConf = errors.New("invalid configuration")

var validate = validator.New()

// Conf mirrors the flags of the parsing commands. Empty strings and nil
// pointers mean "not set" and leave the flag default in place; a file can
// still set an explicit 0 or false.
type Conf struct {
	Input    string   `yaml:"input"`
	Output   string   `yaml:"output"`
	Gold     string   `yaml:"gold"`
	Policy   string   `yaml:"policy" validate:"omitempty,oneof=static dynamic explore"`
	Explore  *float64 `yaml:"explore" validate:"omitempty,gte=0,lte=1"`
	Seed     *int64   `yaml:"seed"`
	Limit    *int     `yaml:"limit" validate:"omitempty,gte=0"`
	Jobs     *int     `yaml:"jobs" validate:"omitempty,gte=0"`
	MaxSteps *int     `yaml:"maxsteps" validate:"omitempty,gte=0"`
	Verbose  *bool    `yaml:"verbose"`
}

func Read(reader io.Reader) (*Conf, error) {
	retval := new(Conf)
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(retval); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConf, err)
	}
	if err := retval.Validate(); err != nil {
		return nil, err
	}
	return retval, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

func (c *Conf) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalidConf, first.Field(), first.Tag(), first.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConf, err)
	}
	return nil
}

// Values returns the set fields keyed by flag name
func (c *Conf) Values() map[string]string {
	values := make(map[string]string)
	setString := func(name, value string) {
		if value != "" {
			values[name] = value
		}
	}
	setString("f", c.Input)
	setString("out", c.Output)
	setString("g", c.Gold)
	setString("policy", c.Policy)
	setInt := func(name string, value *int) {
		if value != nil {
			values[name] = strconv.Itoa(*value)
		}
	}
	if c.Explore != nil {
		values["p"] = strconv.FormatFloat(*c.Explore, 'g', -1, 64)
	}
	if c.Seed != nil {
		values["seed"] = strconv.FormatInt(*c.Seed, 10)
	}
	setInt("limit", c.Limit)
	setInt("jobs", c.Jobs)
	setInt("maxsteps", c.MaxSteps)
	if c.Verbose != nil {
		values["v"] = strconv.FormatBool(*c.Verbose)
	}
	return values
}

// Override sets every flag of fs that has a value in c and was not given
// explicitly. Values with no matching flag in fs are ignored; it returns
// the names of the flags it set, sorted.
func (c *Conf) Override(fs *flag.FlagSet) ([]string, error) {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
	var applied []string
	for name, value := range c.Values() {
		if explicit[name] || fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return nil, fmt.Errorf("%w: flag %s: %v", ErrInvalidConf, name, err)
		}
		applied = append(applied, name)
	}
	sort.Strings(applied)
	return applied, nil
}
