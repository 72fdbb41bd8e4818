package slideshow

import (
	"strconv"

	"github.com/spf13/pflag"
)

// headerLevelValue is one of the --h1/--h2 pair. Both write the same
// target, so whichever appears last on the command line wins.
type headerLevelValue struct {
	target *int
	level  int
}

func (v *headerLevelValue) String() string {
	if v.target != nil && *v.target == v.level {
		return "true"
	}
	return "false"
}

func (v *headerLevelValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*v.target = v.level
	}
	return nil
}

func (v *headerLevelValue) Type() string {
	return "bool"
}

// addHeaderLevelFlags registers --h1 and --h2 on flags, both writing target
func addHeaderLevelFlags(flags *pflag.FlagSet, target *int) {
	for _, f := range []struct {
		name  string
		level int
		usage string
	}{
		{"h1", 1, MsgFlagH1},
		{"h2", 2, MsgFlagH2},
	} {
		flag := flags.VarPF(&headerLevelValue{target: target, level: f.level}, f.name, "", f.usage)
		flag.NoOptDefVal = "true"
	}
}
