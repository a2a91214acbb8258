package config

var Default = Tree{
	filePath: "",
	Output: Output{
		Color:    ColorAuto,
		Charset:  CharsetUnicode,
		ShowSize: false,
	},
	Walk: Walk{
		Depth: -1,
	},
}
