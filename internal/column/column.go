package column

type Column struct {
	Tag   string `yaml:"tag"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

func New(tag, label, color string) Column {
	return Column{
		Tag:   tag,
		Label: label,
		Color: color,
	}
}

// Defaults is the column set used when no board file is given.
func Defaults() []Column {
	return []Column{
		New("backlog", "Backlog", "245"),
		New("todo", "TODO", "229"),
		New("doing", "In progress", "153"),
		New("done", "Complete", "121"),
	}
}

// Index returns the position of tag in cols, or -1.
func Index(cols []Column, tag string) int {
	for i, c := range cols {
		if c.Tag == tag {
			return i
		}
	}
	return -1
}
