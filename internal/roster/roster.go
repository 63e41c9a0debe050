package roster

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/goserg/teambalancer/internal/domain"
)

type file struct {
	Players []domain.PlayerInput `toml:"players"`
}

// Load reads roster rows from a TOML file with a [[players]] array.
func Load(path string) ([]domain.PlayerInput, error) {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, err
	}
	return checked(md, f)
}

func Read(r io.Reader) ([]domain.PlayerInput, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	return checked(md, f)
}

func checked(md toml.MetaData, f file) ([]domain.PlayerInput, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown roster key %s", undecoded[0])
	}
	return f.Players, nil
}
