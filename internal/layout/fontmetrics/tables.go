package fontmetrics

// Static width tables for the five supported resume font families. Values
// are calibration input, reproduced from measured glyph metrics; they are
// not derived in code.

// interTable: Inter, humanist sans-serif (the "Hacker" template).
var interTable = Table{
	Font: Inter,
	widths: [95]float32{
		// sp    !     "     #     $     %     &     '     (     )     *     +     ,     -     .     /
		0.25, 0.30, 0.38, 0.56, 0.56, 0.89, 0.67, 0.22, 0.33, 0.33, 0.39, 0.59, 0.28, 0.33, 0.28, 0.31,
		// 0     1     2     3     4     5     6     7     8     9
		0.56, 0.56, 0.56, 0.56, 0.56, 0.56, 0.56, 0.56, 0.56, 0.56,
		// :     ;     <     =     >     ?     @
		0.28, 0.28, 0.59, 0.59, 0.59, 0.50, 1.02,
		// A     B     C     D     E     F     G     H     I     J     K     L     M
		0.67, 0.61, 0.61, 0.67, 0.56, 0.50, 0.67, 0.67, 0.25, 0.39, 0.61, 0.53, 0.78,
		// N     O     P     Q     R     S     T     U     V     W     X     Y     Z
		0.67, 0.72, 0.56, 0.72, 0.61, 0.50, 0.56, 0.67, 0.67, 0.89, 0.61, 0.61, 0.56,
		// [     \     ]     ^     _     `
		0.28, 0.31, 0.28, 0.47, 0.56, 0.34,
		// a     b     c     d     e     f     g     h     i     j     k     l     m
		0.56, 0.56, 0.50, 0.56, 0.56, 0.31, 0.56, 0.56, 0.22, 0.22, 0.53, 0.22, 0.83,
		// n     o     p     q     r     s     t     u     v     w     x     y     z
		0.56, 0.56, 0.56, 0.56, 0.33, 0.44, 0.39, 0.56, 0.50, 0.72, 0.50, 0.50, 0.44,
		// {     |     }     ~
		0.33, 0.26, 0.33, 0.59,
	},
	AverageCharWidth: 0.52,
	SpaceWidth:       0.25,
}

// ebGaramondTable: EB Garamond, old-style serif (the "Researcher" template).
// Approximately 85% of Inter.
var ebGaramondTable = Table{
	Font: EbGaramond,
	widths: [95]float32{
		0.21, 0.26, 0.32, 0.48, 0.48, 0.76, 0.57, 0.19, 0.28, 0.28, 0.33, 0.50, 0.24, 0.28, 0.24, 0.26,
		0.48, 0.48, 0.48, 0.48, 0.48, 0.48, 0.48, 0.48, 0.48, 0.48,
		0.24, 0.24, 0.50, 0.50, 0.50, 0.43, 0.87,
		0.57, 0.52, 0.52, 0.57, 0.48, 0.43, 0.57, 0.57, 0.21, 0.33, 0.52, 0.45, 0.66,
		0.57, 0.61, 0.48, 0.61, 0.52, 0.43, 0.48, 0.57, 0.57, 0.76, 0.52, 0.52, 0.48,
		0.24, 0.26, 0.24, 0.40, 0.48, 0.29,
		0.48, 0.48, 0.43, 0.48, 0.48, 0.26, 0.48, 0.48, 0.19, 0.19, 0.45, 0.19, 0.71,
		0.48, 0.48, 0.48, 0.48, 0.28, 0.37, 0.33, 0.48, 0.43, 0.61, 0.43, 0.43, 0.37,
		0.28, 0.22, 0.28, 0.50,
	},
	AverageCharWidth: 0.44,
	SpaceWidth:       0.21,
}

// latoTable: Lato, geometric humanist sans-serif (the "Operator" template).
// Approximately 105% of Inter.
var latoTable = Table{
	Font: Lato,
	widths: [95]float32{
		0.26, 0.32, 0.40, 0.59, 0.59, 0.94, 0.70, 0.23, 0.35, 0.35, 0.41, 0.62, 0.29, 0.35, 0.29, 0.33,
		0.59, 0.59, 0.59, 0.59, 0.59, 0.59, 0.59, 0.59, 0.59, 0.59,
		0.29, 0.29, 0.62, 0.62, 0.62, 0.53, 1.07,
		0.70, 0.64, 0.64, 0.70, 0.59, 0.53, 0.70, 0.70, 0.26, 0.41, 0.64, 0.56, 0.82,
		0.70, 0.76, 0.59, 0.76, 0.64, 0.53, 0.59, 0.70, 0.70, 0.94, 0.64, 0.64, 0.59,
		0.29, 0.33, 0.29, 0.49, 0.59, 0.36,
		0.59, 0.59, 0.53, 0.59, 0.59, 0.33, 0.59, 0.59, 0.23, 0.23, 0.56, 0.23, 0.87,
		0.59, 0.59, 0.59, 0.59, 0.35, 0.46, 0.41, 0.59, 0.53, 0.76, 0.53, 0.53, 0.46,
		0.35, 0.27, 0.35, 0.62,
	},
	AverageCharWidth: 0.55,
	SpaceWidth:       0.26,
}

// oswaldTable: Oswald, condensed display sans-serif (the "Founder" template).
// Approximately 68% of Inter.
var oswaldTable = Table{
	Font: Oswald,
	widths: [95]float32{
		0.17, 0.20, 0.26, 0.38, 0.38, 0.61, 0.46, 0.15, 0.23, 0.23, 0.27, 0.40, 0.19, 0.23, 0.19, 0.21,
		0.38, 0.38, 0.38, 0.38, 0.38, 0.38, 0.38, 0.38, 0.38, 0.38,
		0.19, 0.19, 0.40, 0.40, 0.40, 0.34, 0.69,
		0.46, 0.41, 0.41, 0.46, 0.38, 0.34, 0.46, 0.46, 0.17, 0.27, 0.41, 0.36, 0.53,
		0.46, 0.49, 0.38, 0.49, 0.41, 0.34, 0.38, 0.46, 0.46, 0.61, 0.41, 0.41, 0.38,
		0.19, 0.21, 0.19, 0.32, 0.38, 0.23,
		0.38, 0.38, 0.34, 0.38, 0.38, 0.21, 0.38, 0.38, 0.15, 0.15, 0.36, 0.15, 0.56,
		0.38, 0.38, 0.38, 0.38, 0.23, 0.30, 0.27, 0.38, 0.34, 0.49, 0.34, 0.34, 0.30,
		0.23, 0.18, 0.23, 0.40,
	},
	AverageCharWidth: 0.35,
	SpaceWidth:       0.17,
}

// computerModernTable: Computer Modern, traditional TeX font (the
// "Classic"/ATS-safe template). Approximately 90% of Inter.
var computerModernTable = Table{
	Font: ComputerModern,
	widths: [95]float32{
		0.23, 0.27, 0.34, 0.50, 0.50, 0.80, 0.60, 0.20, 0.30, 0.30, 0.35, 0.53, 0.25, 0.30, 0.25, 0.28,
		0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50,
		0.25, 0.25, 0.53, 0.53, 0.53, 0.45, 0.92,
		0.60, 0.55, 0.55, 0.60, 0.50, 0.45, 0.60, 0.60, 0.23, 0.35, 0.55, 0.48, 0.70,
		0.60, 0.65, 0.50, 0.65, 0.55, 0.45, 0.50, 0.60, 0.60, 0.80, 0.55, 0.55, 0.50,
		0.25, 0.28, 0.25, 0.42, 0.50, 0.31,
		0.50, 0.50, 0.45, 0.50, 0.50, 0.28, 0.50, 0.50, 0.20, 0.20, 0.48, 0.20, 0.75,
		0.50, 0.50, 0.50, 0.50, 0.30, 0.40, 0.35, 0.50, 0.45, 0.65, 0.45, 0.45, 0.40,
		0.30, 0.23, 0.30, 0.53,
	},
	AverageCharWidth: 0.47,
	SpaceWidth:       0.23,
}
