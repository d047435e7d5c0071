package ijtima

// Layered mean-motion tables. Each layer is searched for the first
// breakpoint at or above the requested value.
var layers = map[Quantity]Layers{
	Alamah: {
		Epoch: ThresholdTable{
			{1410, 161.900}, {1420, 33.983}, {1430, 74.067}, {1440, 114.150}, {1450, 154.233},
			{1460, 26.317}, {1470, 66.400}, {1480, 106.483}, {1490, 146.566}, {1500, 18.649},
			{1510, 58.732}, {1520, 98.815}, {1530, 138.898}, {1540, 10.981}, {1550, 51.064},
		},
		Offset: sequence(104.800, 41.617, 146.417, 83.233, 20.033, 124.850, 61.650, 166.467, 103.267, 40.083),
		Month: sequence(
			68.067, 0.000, 36.733, 73.467, 110.200, 146.933,
			15.667, 52.400, 89.133, 125.867, 162.600, 31.333,
		),
	},
	Hissoh: {
		Epoch: ThresholdTable{
			{1410, 197.550}, {1420, 278.050}, {1430, 358.550}, {1440, 79.050}, {1450, 159.550},
			{1460, 240.050}, {1470, 320.550}, {1480, 41.050}, {1490, 121.550}, {1500, 202.050},
			{1510, 282.550}, {1520, 3.050}, {1530, 83.550}, {1540, 164.050}, {1550, 244.550},
		},
		Offset: sequence(8.050, 16.100, 24.150, 32.200, 40.250, 48.300, 56.350, 64.400, 72.450, 80.500),
		Month: sequence(
			337.383, 0.000, 30.667, 61.333, 92.017, 122.683,
			153.350, 184.017, 214.700, 245.367, 276.050, 306.717,
		),
	},
	Wasat: {
		Epoch: ThresholdTable{
			{1410, 162.000}, {1420, 54.800}, {1430, 307.600}, {1440, 200.400}, {1450, 93.200},
			{1460, 346.000}, {1470, 238.800}, {1480, 131.600}, {1490, 24.400}, {1500, 277.200},
			{1510, 170.000}, {1520, 62.800}, {1530, 315.600}, {1540, 208.400}, {1550, 101.200},
		},
		Offset: sequence(349.267, 338.567, 327.833, 317.117, 306.400, 295.683, 284.967, 274.233, 263.517, 252.800),
		Month: sequence(
			320.167, 0.000, 29.100, 58.217, 87.317, 116.433,
			145.533, 174.633, 203.750, 232.850, 261.950, 291.067,
		),
	},
	Khosoh: {
		Epoch: ThresholdTable{
			{1410, 322.217}, {1420, 180.217}, {1430, 38.217}, {1440, 256.217}, {1450, 114.217},
			{1460, 332.217}, {1470, 190.217}, {1480, 48.217}, {1490, 266.217}, {1500, 124.217},
			{1510, 342.217}, {1520, 3.050}, {1530, 83.550}, {1540, 164.050}, {1550, 244.550},
		},
		Offset: sequence(309.800, 259.600, 209.400, 159.200, 109.000, 58.800, 8.600, 318.400, 268.200, 218.000),
		Month: sequence(
			283.983, 0.000, 25.817, 51.633, 77.433, 103.267,
			129.083, 154.900, 180.717, 206.533, 232.350, 258.167,
		),
	},
	Markaz: {
		Epoch: ThresholdTable{
			{1410, 59.833}, {1420, 312.500}, {1430, 205.167}, {1440, 97.833}, {1450, 350.500},
			{1460, 243.167}, {1470, 135.833}, {1480, 28.500}, {1490, 281.167}, {1500, 173.833},
			{1510, 66.500}, {1520, 319.167}, {1530, 211.834}, {1540, 104.501}, {1550, 357.168},
		},
		Offset: sequence(349.267, 338.533, 327.800, 317.067, 306.333, 295.600, 284.867, 274.133, 263.400, 252.667),
		Month: sequence(
			320.167, 0.000, 29.100, 58.217, 87.317, 116.433,
			145.533, 174.633, 203.750, 232.850, 261.950, 291.067,
		),
	},
}

// tadilKhosoh is the anomaly correction per degree of khosoh.
var tadilKhosoh = FlatTable{
	4.983, 4.900, 4.833, 4.750, 4.667, 4.583, 4.500, 4.417, 4.333, 4.250, // 0
	4.183, 4.100, 4.017, 3.933, 3.850, 3.783, 3.717, 3.633, 3.550, 3.467, // 10
	3.400, 3.317, 3.250, 3.183, 3.117, 3.050, 2.967, 2.900, 2.817, 2.750, // 20
	2.683, 2.600, 2.533, 2.467, 2.400, 2.333, 2.250, 2.183, 2.117, 2.050, // 30
	1.983, 1.917, 1.850, 1.783, 1.717, 1.667, 1.600, 1.550, 1.483, 1.433, // 40
	1.383, 1.317, 1.267, 1.217, 1.167, 1.117, 1.067, 1.017, 0.967, 0.917, // 50
	0.867, 0.817, 0.783, 0.733, 0.683, 0.633, 0.600, 0.567, 0.533, 0.483, // 60
	0.450, 0.433, 0.417, 0.383, 0.350, 0.300, 0.283, 0.267, 0.250, 0.217, // 70
	0.183, 0.150, 0.133, 0.117, 0.100, 0.083, 0.067, 0.050, 0.050, 0.033, // 80
	0.033, 0.033, 0.017, 0.017, 0.000, 0.000, 0.000, 0.000, 0.017, 0.017, // 90
	0.033, 0.033, 0.050, 0.067, 0.083, 0.100, 0.117, 0.133, 0.150, 0.167, // 100
	0.183, 0.200, 0.250, 0.267, 0.300, 0.317, 0.350, 0.383, 0.417, 0.450, // 110
	0.500, 0.533, 0.583, 0.617, 0.667, 0.717, 0.767, 0.817, 0.867, 0.917, // 120
	0.967, 1.033, 1.083, 1.150, 1.200, 1.250, 1.317, 1.383, 1.450, 1.517, // 130
	1.583, 1.650, 1.717, 1.783, 1.850, 1.933, 2.000, 2.083, 2.150, 2.233, // 140
	2.317, 2.383, 2.450, 2.533, 2.617, 2.717, 2.800, 2.950, 2.967, 3.050, // 150
	3.133, 3.217, 3.317, 3.400, 3.483, 3.583, 3.667, 3.750, 3.850, 3.933, // 160
	4.033, 4.117, 4.200, 4.283, 4.367, 4.450, 4.550, 4.650, 4.767, 4.867, // 170
	4.983, 5.083, 5.183, 5.267, 5.367, 5.450, 5.550, 5.650, 5.750, 5.833, // 180
	5.933, 6.033, 6.133, 6.217, 6.317, 6.400, 6.500, 6.583, 6.667, 6.750, // 190
	6.833, 6.933, 7.017, 7.100, 7.183, 7.267, 7.350, 7.433, 7.517, 7.600, // 200
	7.683, 7.767, 7.833, 7.917, 7.983, 8.050, 8.133, 8.200, 8.283, 8.350, // 210
	8.417, 8.483, 8.550, 8.617, 8.683, 8.733, 8.800, 8.850, 8.900, 8.967, // 220
	9.017, 9.067, 9.117, 9.167, 9.217, 9.267, 9.317, 9.350, 9.383, 9.433, // 230
	9.483, 9.517, 9.550, 9.600, 9.633, 9.667, 9.683, 9.700, 9.733, 9.767, // 240
	9.800, 9.817, 9.833, 9.850, 9.867, 9.883, 9.900, 9.917, 9.933, 9.950, // 250
	9.950, 9.967, 9.967, 9.983, 9.983, 10.000, 10.000, 10.000, 9.983, 9.983, // 260
	9.983, 9.983, 9.967, 9.950, 9.950, 9.933, 9.900, 9.883, 9.867, 9.833, // 270
	9.800, 9.783, 9.767, 9.733, 9.717, 9.683, 9.650, 9.617, 9.583, 9.550, // 280
	9.517, 9.483, 9.450, 9.417, 9.383, 9.333, 9.283, 9.250, 9.217, 9.167, // 290
	9.117, 9.067, 9.017, 8.967, 8.917, 8.867, 8.817, 8.767, 8.717, 8.667, // 300
	8.600, 8.550, 8.483, 8.417, 8.367, 8.300, 8.250, 8.183, 8.117, 8.050, // 310
	7.983, 7.917, 7.850, 7.783, 7.717, 7.650, 7.583, 7.517, 7.450, 7.383, // 320
	7.300, 7.233, 7.150, 7.083, 7.000, 6.933, 6.867, 6.800, 6.717, 6.650, // 330
	6.583, 6.500, 6.400, 6.350, 6.267, 6.183, 6.100, 6.017, 5.950, 5.867, // 340
	5.783, 5.700, 5.617, 5.550, 5.467, 5.383, 5.300, 5.217, 5.150, 5.067, // 350
}

// tadilMarkaz is the centre correction per degree of markaz.
var tadilMarkaz = FlatTable{
	1.933, 1.983, 2.017, 2.050, 2.083, 2.100, 2.133, 2.167, 2.200, 2.233, // 0
	2.267, 2.300, 2.317, 2.350, 2.383, 2.417, 2.450, 2.483, 2.517, 2.550, // 10
	2.583, 2.617, 2.650, 2.667, 2.700, 2.733, 2.767, 2.800, 2.833, 2.850, // 20
	2.883, 2.917, 2.950, 2.967, 2.983, 3.017, 3.050, 3.083, 3.117, 3.133, // 30
	3.150, 3.167, 3.200, 3.217, 3.250, 3.267, 3.283, 3.317, 3.333, 3.350, // 40
	3.383, 3.400, 3.433, 3.450, 3.467, 3.500, 3.517, 3.533, 3.550, 3.567, // 50
	3.583, 3.600, 3.617, 3.633, 3.650, 3.667, 3.683, 3.683, 3.700, 3.717, // 60
	3.733, 3.750, 3.767, 3.767, 3.783, 3.800, 3.800, 3.800, 3.817, 3.817, // 70
	3.833, 3.833, 3.850, 3.850, 3.850, 3.867, 3.867, 3.867, 3.867, 3.867, // 80
	3.867, 3.867, 3.867, 3.867, 3.867, 3.867, 3.867, 3.867, 3.867, 3.867, // 90
	3.867, 3.850, 3.850, 3.850, 3.833, 3.833, 3.817, 3.800, 3.800, 3.783, // 100
	3.783, 3.767, 3.750, 3.750, 3.733, 3.717, 3.717, 3.700, 3.683, 3.660, // 110
	3.650, 3.633, 3.617, 3.600, 3.583, 3.567, 3.550, 3.533, 3.500, 3.483, // 120
	3.467, 3.450, 3.417, 3.400, 3.367, 3.350, 3.317, 3.300, 3.283, 3.250, // 130
	3.233, 3.200, 3.167, 3.133, 3.117, 3.083, 3.050, 3.017, 2.983, 2.950, // 140
	2.933, 2.900, 2.867, 2.850, 2.817, 2.783, 2.750, 2.717, 2.700, 2.667, // 150
	2.633, 2.600, 2.567, 2.533, 2.500, 2.467, 2.433, 2.383, 2.350, 2.317, // 160
	2.283, 2.250, 2.217, 2.183, 2.150, 2.117, 2.083, 2.050, 2.017, 1.983, // 170
	1.933, 1.900, 1.883, 1.850, 1.800, 1.767, 1.733, 1.700, 1.667, 1.633, // 180
	1.600, 1.567, 1.533, 1.483, 1.450, 1.417, 1.383, 1.350, 1.317, 1.283, // 190
	1.250, 1.217, 1.183, 1.167, 1.133, 1.100, 1.067, 1.033, 1.000, 0.967, // 200
	0.933, 0.900, 0.867, 0.833, 0.800, 0.783, 0.750, 0.717, 0.700, 0.667, // 210
	0.650, 0.617, 0.600, 0.583, 0.550, 0.533, 0.500, 0.483, 0.467, 0.433, // 220
	0.417, 0.400, 0.383, 0.350, 0.333, 0.317, 0.300, 0.283, 0.267, 0.250, // 230
	0.233, 0.217, 0.200, 0.183, 0.167, 0.150, 0.150, 0.133, 0.117, 0.117, // 240
	0.100, 0.100, 0.083, 0.067, 0.067, 0.050, 0.050, 0.033, 0.033, 0.017, // 250
	0.017, 0.017, 0.017, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, // 260
	0.000, 0.000, 0.000, 0.000, 0.017, 0.017, 0.017, 0.033, 0.033, 0.033, // 270
	0.050, 0.050, 0.067, 0.067, 0.083, 0.100, 0.100, 0.117, 0.117, 0.133, // 280
	0.150, 0.150, 0.167, 0.183, 0.200, 0.217, 0.233, 0.250, 0.267, 0.283, // 290
	0.300, 0.317, 0.333, 0.360, 0.383, 0.400, 0.417, 0.433, 0.467, 0.483, // 300
	0.500, 0.517, 0.550, 0.567, 0.600, 0.617, 0.633, 0.667, 0.683, 0.717, // 310
	0.733, 0.767, 0.783, 0.817, 0.833, 0.867, 0.883, 0.917, 0.933, 0.967, // 320
	1.000, 1.033, 1.067, 1.083, 1.117, 1.150, 1.183, 1.217, 1.233, 1.267, // 330
	1.300, 1.333, 1.367, 1.383, 1.400, 1.450, 1.483, 1.517, 1.550, 1.583, // 340
	1.617, 1.650, 1.683, 1.717, 1.750, 1.767, 1.800, 1.833, 1.867, 1.900, // 350
}

// kamiyah is the lunar illumination per degree of hissoh.
var kamiyah = FlatTable{
	1.933, 1.983, 2.017, 2.050, 2.083, 2.100, 2.133, 2.167, 2.200, 2.233, // 0
	2.267, 2.300, 2.317, 2.350, 2.383, 2.417, 2.450, 2.483, 2.517, 2.550, // 10
	2.583, 2.617, 2.650, 2.667, 2.700, 2.733, 2.767, 2.800, 2.833, 2.850, // 20
	2.883, 2.917, 2.950, 2.967, 2.983, 3.017, 3.050, 3.083, 3.117, 3.133, // 30
	3.150, 3.167, 3.200, 3.217, 3.250, 3.267, 3.283, 3.317, 3.333, 3.350, // 40
	3.383, 3.400, 3.433, 3.450, 3.467, 3.500, 3.517, 3.533, 3.550, 3.567, // 50
	3.583, 3.600, 3.617, 3.633, 3.650, 3.667, 3.683, 3.683, 3.700, 3.717, // 60
	3.733, 3.750, 3.767, 3.767, 3.783, 3.800, 3.800, 3.800, 3.817, 3.817, // 70
	3.833, 3.833, 3.850, 3.850, 3.850, 3.867, 3.867, 3.867, 3.867, 3.867, // 80
	3.867, 3.867, 3.867, 3.867, 3.867, 3.867, 3.867, 3.867, 3.867, 3.867, // 90
	3.867, 3.850, 3.850, 3.850, 3.883, 3.883, 3.817, 3.800, 3.800, 3.783, // 100
	3.783, 3.767, 3.750, 3.750, 3.733, 3.717, 3.717, 3.700, 3.683, 3.660, // 110
	3.650, 3.633, 3.617, 3.600, 3.583, 3.567, 3.550, 3.533, 3.500, 3.483, // 120
	3.467, 3.450, 3.417, 3.400, 3.367, 3.350, 3.317, 3.300, 3.283, 3.250, // 130
	3.233, 3.200, 3.167, 3.133, 3.117, 3.083, 3.050, 3.017, 2.983, 2.950, // 140
	2.933, 2.900, 2.867, 2.850, 2.817, 2.783, 2.750, 2.717, 2.700, 2.667, // 150
	2.633, 2.600, 2.567, 2.533, 2.500, 2.467, 2.433, 2.383, 2.350, 2.317, // 160
	2.283, 2.250, 2.217, 2.183, 2.150, 2.117, 2.083, 2.050, 2.017, 1.983, // 170
	1.933, 1.917, 1.883, 1.850, 1.800, 1.767, 1.733, 1.700, 1.667, 1.633, // 180
	1.600, 1.567, 1.533, 1.483, 1.450, 1.417, 1.383, 1.350, 1.317, 1.283, // 190
	1.250, 1.217, 1.183, 1.167, 1.133, 1.100, 1.067, 1.033, 1.000, 0.967, // 200
	0.933, 0.900, 0.867, 0.833, 0.800, 0.783, 0.750, 0.717, 0.700, 0.667, // 210
	0.650, 0.617, 0.600, 0.583, 0.550, 0.533, 0.500, 0.483, 0.467, 0.433, // 220
	0.417, 0.400, 0.383, 0.350, 0.333, 0.317, 0.300, 0.283, 0.267, 0.250, // 230
	0.233, 0.217, 0.200, 0.183, 0.167, 0.150, 0.150, 0.133, 0.117, 0.117, // 240
	0.100, 0.100, 0.083, 0.067, 0.067, 0.050, 0.050, 0.033, 0.017, 0.017, // 250
	0.017, 0.017, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, 0.000, // 260
	0.000, 0.000, 0.000, 0.000, 0.017, 0.017, 0.017, 0.033, 0.033, 0.033, // 270
	0.050, 0.050, 0.067, 0.067, 0.083, 0.100, 0.100, 0.117, 0.117, 0.133, // 280
	0.150, 0.150, 0.167, 0.183, 0.200, 0.217, 0.233, 0.250, 0.267, 0.283, // 290
	0.300, 0.317, 0.333, 0.360, 0.383, 0.400, 0.417, 0.433, 0.467, 0.483, // 300
	0.500, 0.517, 0.550, 0.567, 0.600, 0.617, 0.633, 0.667, 0.683, 0.717, // 310
	0.733, 0.767, 0.783, 0.817, 0.833, 0.867, 0.883, 0.917, 0.933, 0.967, // 320
	1.000, 1.033, 1.067, 1.083, 1.117, 1.150, 1.183, 1.217, 1.233, 1.267, // 330
	1.300, 1.333, 1.367, 1.383, 1.400, 1.450, 1.483, 1.517, 1.550, 1.583, // 340
	1.617, 1.650, 1.683, 1.717, 1.750, 1.767, 1.800, 1.833, 1.867, 1.900, // 350
}

// tadilAyyam is the day equation by equated solar longitude.
var tadilAyyam = BandTable{
	Fallback: FallbackZero,
	Bands: []Band{
		{355, 0.050}, {350, 0.050}, {345, 0.033}, {340, 0.017}, {335, 0.017}, {330, 0.000},
		{325, 0.000}, {320, 0.000}, {315, 0.000}, {310, 0.017}, {305, 0.017}, {300, 0.033},
		{295, 0.050}, {290, 0.067}, {285, 0.083}, {280, 0.100}, {275, 0.117}, {270, 0.150},
		{265, 0.167}, {260, 0.183}, {255, 0.217}, {250, 0.233}, {245, 0.250}, {240, 0.267},
		{235, 0.267}, {230, 0.283}, {225, 0.283}, {220, 0.283}, {215, 0.283}, {210, 0.283},
		{205, 0.267}, {200, 0.267}, {195, 0.250}, {190, 0.233}, {185, 0.217}, {180, 0.217},
		{175, 0.200}, {170, 0.183}, {165, 0.187}, {160, 0.150}, {155, 0.133}, {150, 0.117},
		{145, 0.117}, {140, 0.110}, {135, 0.100}, {130, 0.100}, {125, 0.083}, {120, 0.100},
		{115, 0.100}, {110, 0.100}, {105, 0.117}, {100, 0.117}, {95, 0.133}, {90, 0.133},
		{85, 0.150}, {80, 0.150}, {75, 0.167}, {70, 0.167}, {65, 0.183}, {60, 0.183},
		{55, 0.183}, {50, 0.183}, {45, 0.183}, {40, 0.167}, {35, 0.167}, {30, 0.150},
		{25, 0.150}, {20, 0.133}, {15, 0.117}, {10, 0.100}, {5, 0.083}, {0, 0.067},
	},
}

// hissohSaah is the hourly rate by khosoh.
var hissohSaah = BandTable{
	Fallback: FallbackLast,
	Bands: []Band{
		{355, 2.200}, {350, 2.200}, {345, 2.200}, {340, 2.183}, {335, 2.167}, {330, 2.150},
		{325, 2.133}, {320, 2.117}, {315, 2.100}, {310, 2.100}, {305, 2.067}, {300, 2.050},
		{295, 2.033}, {290, 2.017}, {285, 2.000}, {280, 1.983}, {275, 1.983}, {270, 1.967},
		{265, 1.933}, {260, 1.917}, {255, 1.900}, {250, 1.883}, {245, 1.867}, {240, 1.850},
		{235, 1.833}, {230, 1.800}, {225, 1.800}, {220, 1.783}, {215, 1.767}, {210, 1.767},
		{205, 1.750}, {200, 1.750}, {195, 1.750}, {190, 1.750}, {185, 1.750}, {180, 1.750},
		{175, 1.750}, {170, 1.767}, {165, 1.767}, {160, 1.783}, {155, 1.800}, {150, 1.817},
		{145, 1.833}, {140, 1.833}, {135, 1.867}, {130, 1.883}, {125, 1.900}, {120, 1.917},
		{115, 1.933}, {110, 1.950}, {105, 1.983}, {100, 2.017}, {95, 2.033}, {90, 2.050},
		{85, 2.067}, {80, 2.083}, {75, 2.100}, {70, 2.117}, {65, 2.133}, {60, 2.150},
		{55, 2.167}, {50, 2.167}, {45, 2.167}, {40, 2.183}, {35, 2.200}, {30, 2.200},
		{25, 2.200}, {20, 2.200}, {15, 2.217}, {10, 2.217}, {5, 2.217}, {0, 2.217},
	},
}
