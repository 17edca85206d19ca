package solarvibe

// SolarSystem returns the built-in catalogue: the Sun, the eight planets with
// their major moons, and Ceres. Elements are osculating at J2000.
func SolarSystem() *Catalogue {
	c, err := NewCatalogue(solarSystemDefinitions())
	if err != nil {
		panic(err)
	}
	return c
}

func solarSystemDefinitions() []BodyDefinition {
	return []BodyDefinition{
		{
			ID:                  "sun",
			Name:                "Sun",
			Category:            Star,
			RadiusKm:            695700,
			Color:               mustHex("#ffd27f"),
			RenderRadius:        1.4,
			RotationPeriodHours: 609.12,
			AxialTiltDeg:        7.25,
		},
		{
			ID:                  "mercury",
			Name:                "Mercury",
			Category:            Planet,
			RadiusKm:            2439.7,
			Color:               mustHex("#c1acab"),
			ParentID:            "sun",
			RotationPeriodHours: 1407.5,
			AxialTiltDeg:        0.01,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.38709927,
				Eccentricity:           0.20563593,
				InclinationDeg:         7.00497902,
				LongitudeAscendingNode: 48.33076593,
				ArgumentOfPeriapsis:    29.12427935,
				MeanAnomalyAtEpoch:     174.79252722,
				PeriodDays:             87.9691,
			},
		},
		{
			ID:                  "venus",
			Name:                "Venus",
			Category:            Planet,
			RadiusKm:            6051.8,
			Color:               mustHex("#e0c080"),
			ParentID:            "sun",
			RotationPeriodHours: -5832.5,
			AxialTiltDeg:        177.36,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.72333566,
				Eccentricity:           0.00677672,
				InclinationDeg:         3.39467605,
				LongitudeAscendingNode: 76.67984255,
				ArgumentOfPeriapsis:    54.92246763,
				MeanAnomalyAtEpoch:     50.37663228,
				PeriodDays:             224.7008,
			},
		},
		{
			ID:                  "earth",
			Name:                "Earth",
			Category:            Planet,
			RadiusKm:            6371.0,
			Color:               mustHex("#4a90e2"),
			ParentID:            "sun",
			RotationPeriodHours: 23.934,
			AxialTiltDeg:        23.44,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        1.00000011,
				Eccentricity:           0.01671022,
				InclinationDeg:         0.00005,
				LongitudeAscendingNode: -11.26064,
				ArgumentOfPeriapsis:    114.20783,
				MeanAnomalyAtEpoch:     357.51716,
				PeriodDays:             365.256363,
			},
		},
		{
			ID:                  "moon",
			Name:                "Moon",
			Category:            Moon,
			RadiusKm:            1737.4,
			Color:               mustHex("#bcb8b2"),
			ParentID:            "earth",
			RotationPeriodHours: 655.728,
			AxialTiltDeg:        6.68,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.002569555,
				Eccentricity:           0.0549,
				InclinationDeg:         5.145,
				LongitudeAscendingNode: 125.08,
				ArgumentOfPeriapsis:    318.15,
				MeanAnomalyAtEpoch:     115.3654,
				PeriodDays:             27.321661,
			},
		},
		{
			ID:                  "mars",
			Name:                "Mars",
			Category:            Planet,
			RadiusKm:            3389.5,
			Color:               mustHex("#c8654d"),
			ParentID:            "sun",
			RotationPeriodHours: 24.623,
			AxialTiltDeg:        25.19,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        1.52371034,
				Eccentricity:           0.09339410,
				InclinationDeg:         1.84969142,
				LongitudeAscendingNode: 49.55953891,
				ArgumentOfPeriapsis:    286.502,
				MeanAnomalyAtEpoch:     19.39019754,
				PeriodDays:             686.980,
			},
		},
		{
			ID:                  "phobos",
			Name:                "Phobos",
			Category:            Moon,
			RadiusKm:            11.2667,
			Color:               mustHex("#8f8a86"),
			ParentID:            "mars",
			RenderRadius:        0.25,
			RotationPeriodHours: 7.66,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.000062675,
				Eccentricity:           0.0151,
				InclinationDeg:         1.9,
				LongitudeAscendingNode: 49.0,
				ArgumentOfPeriapsis:    150.1,
				MeanAnomalyAtEpoch:     80.0,
				PeriodDays:             0.31891,
			},
		},
		{
			ID:                  "deimos",
			Name:                "Deimos",
			Category:            Moon,
			RadiusKm:            6.2,
			Color:               mustHex("#b5b0ab"),
			ParentID:            "mars",
			RenderRadius:        0.22,
			RotationPeriodHours: 30.35,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.000156842,
				Eccentricity:           0.0002,
				InclinationDeg:         1.8,
				LongitudeAscendingNode: 49.6,
				ArgumentOfPeriapsis:    70.0,
				MeanAnomalyAtEpoch:     140.0,
				PeriodDays:             1.26244,
			},
		},
		{
			ID:                  "jupiter",
			Name:                "Jupiter",
			Category:            Planet,
			RadiusKm:            69911,
			Color:               mustHex("#d7b37a"),
			ParentID:            "sun",
			RenderRadius:        2.6,
			RotationPeriodHours: 9.925,
			AxialTiltDeg:        3.13,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        5.20288700,
				Eccentricity:           0.04838624,
				InclinationDeg:         1.30439695,
				LongitudeAscendingNode: 100.47390909,
				ArgumentOfPeriapsis:    274.27305074,
				MeanAnomalyAtEpoch:     19.66796068,
				PeriodDays:             4332.589,
			},
		},
		{
			ID:       "io",
			Name:     "Io",
			Category: Moon,
			RadiusKm: 1821.6,
			Color:    mustHex("#ffe276"),
			ParentID: "jupiter",
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.002819,
				Eccentricity:           0.004879458023067604,
				InclinationDeg:         2.212625896929864,
				LongitudeAscendingNode: 336.8522496700484,
				ArgumentOfPeriapsis:    67.08346085353269,
				MeanAnomalyAtEpoch:     334.24284160276244,
				PeriodDays:             1.7718964834223734,
			},
		},
		{
			ID:       "europa",
			Name:     "Europa",
			Category: Moon,
			RadiusKm: 1560.8,
			Color:    mustHex("#d9d2c5"),
			ParentID: "jupiter",
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.004484,
				Eccentricity:           0.009789867263725448,
				InclinationDeg:         1.7909887092581105,
				LongitudeAscendingNode: 332.6282575700165,
				ArgumentOfPeriapsis:    254.12181778318993,
				MeanAnomalyAtEpoch:     345.93160032652116,
				PeriodDays:             3.5531831164380687,
			},
		},
		{
			ID:       "ganymede",
			Name:     "Ganymede",
			Category: Moon,
			RadiusKm: 2634.1,
			Color:    mustHex("#bca48c"),
			ParentID: "jupiter",
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.007155,
				Eccentricity:           0.0014109763895793213,
				InclinationDeg:         2.214133473599043,
				LongitudeAscendingNode: 343.173070881089,
				ArgumentOfPeriapsis:    316.987280706706,
				MeanAnomalyAtEpoch:     279.8660625759672,
				PeriodDays:             7.156822593270807,
			},
		},
		{
			ID:       "callisto",
			Name:     "Callisto",
			Category: Moon,
			RadiusKm: 2410.3,
			Color:    mustHex("#958172"),
			ParentID: "jupiter",
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.012585,
				Eccentricity:           0.007426728567527058,
				InclinationDeg:         2.0169160591039708,
				LongitudeAscendingNode: 337.9427202690351,
				ArgumentOfPeriapsis:    16.475597133407142,
				MeanAnomalyAtEpoch:     84.7704510799774,
				PeriodDays:             16.692158624085896,
			},
		},
		{
			ID:                  "saturn",
			Name:                "Saturn",
			Category:            Planet,
			RadiusKm:            58232,
			Color:               mustHex("#f4c98c"),
			ParentID:            "sun",
			RenderRadius:        2.1,
			RotationPeriodHours: 10.656,
			AxialTiltDeg:        26.73,
			Ring:                &RingSpec{InnerScale: 1.5, OuterScale: 2.7, Color: mustHex("#867859"), Opacity: 0.9, NodeDeg: 0},
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        9.53667594,
				Eccentricity:           0.05386179,
				InclinationDeg:         2.48599187,
				LongitudeAscendingNode: 113.66242448,
				ArgumentOfPeriapsis:    338.9393318,
				MeanAnomalyAtEpoch:     317.355366,
				PeriodDays:             10759.22,
			},
		},
		{
			ID:           "mimas",
			Name:         "Mimas",
			Category:     Moon,
			RadiusKm:     198.2,
			Color:        mustHex("#a09d9a"),
			ParentID:     "saturn",
			RenderRadius: 0.45,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.001247966,
				Eccentricity:           0.023254490718893114,
				InclinationDeg:         27.00219363533106,
				LongitudeAscendingNode: 172.05495885813778,
				ArgumentOfPeriapsis:    111.48418723684985,
				MeanAnomalyAtEpoch:     34.63865465393197,
				PeriodDays:             0.9524895104243762,
			},
		},
		{
			ID:           "enceladus",
			Name:         "Enceladus",
			Category:     Moon,
			RadiusKm:     252.1,
			Color:        mustHex("#d8f0ff"),
			ParentID:     "saturn",
			RenderRadius: 0.5,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.001598086,
				Eccentricity:           0.00782397030001267,
				InclinationDeg:         28.051902047724234,
				LongitudeAscendingNode: 169.5063751089069,
				ArgumentOfPeriapsis:    135.52198957313303,
				MeanAnomalyAtEpoch:     6.905304171394682,
				PeriodDays:             1.3802453328200734,
			},
		},
		{
			ID:           "tethys",
			Name:         "Tethys",
			Category:     Moon,
			RadiusKm:     531.1,
			Color:        mustHex("#e2e7ed"),
			ParentID:     "saturn",
			RenderRadius: 0.55,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.001976283,
				Eccentricity:           0.0022014883113555092,
				InclinationDeg:         27.22120628492098,
				LongitudeAscendingNode: 167.9993998500507,
				ArgumentOfPeriapsis:    150.96743452966223,
				MeanAnomalyAtEpoch:     357.46756390123517,
				PeriodDays:             1.8981465954591739,
			},
		},
		{
			ID:           "dione",
			Name:         "Dione",
			Category:     Moon,
			RadiusKm:     561.4,
			Color:        mustHex("#dad5cf"),
			ParentID:     "saturn",
			RenderRadius: 0.55,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.002528997,
				Eccentricity:           0.0038068490726938563,
				InclinationDeg:         28.041308782726794,
				LongitudeAscendingNode: 169.4701294979719,
				ArgumentOfPeriapsis:    155.42367458880864,
				MeanAnomalyAtEpoch:     341.5604040819433,
				PeriodDays:             2.747758095465961,
			},
		},
		{
			ID:           "rhea",
			Name:         "Rhea",
			Category:     Moon,
			RadiusKm:     763.8,
			Color:        mustHex("#d9d0c8"),
			ParentID:     "saturn",
			RenderRadius: 0.6,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.003520505,
				Eccentricity:           0.0013615920996962673,
				InclinationDeg:         28.241507765885782,
				LongitudeAscendingNode: 168.98424305946335,
				ArgumentOfPeriapsis:    188.92715115459765,
				MeanAnomalyAtEpoch:     183.7469268557453,
				PeriodDays:             4.512981388162771,
			},
		},
		{
			ID:           "titan",
			Name:         "Titan",
			Category:     Moon,
			RadiusKm:     2574.73,
			Color:        mustHex("#e3b079"),
			ParentID:     "saturn",
			RenderRadius: 0.85,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.008162535,
				Eccentricity:           0.029040662450052376,
				InclinationDeg:         27.718340750856644,
				LongitudeAscendingNode: 169.23906927048893,
				ArgumentOfPeriapsis:    164.15095124297517,
				MeanAnomalyAtEpoch:     163.69436481455034,
				PeriodDays:             15.93285571022866,
			},
		},
		{
			ID:           "iapetus",
			Name:         "Iapetus",
			Category:     Moon,
			RadiusKm:     734.5,
			Color:        mustHex("#c5b39d"),
			ParentID:     "saturn",
			RenderRadius: 0.7,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.023810451,
				Eccentricity:           0.02813722580864883,
				InclinationDeg:         17.238667187294606,
				LongitudeAscendingNode: 139.68247227332336,
				ArgumentOfPeriapsis:    229.25704443877794,
				MeanAnomalyAtEpoch:     208.46801128737624,
				PeriodDays:             79.37933700695002,
			},
		},
		{
			ID:                  "uranus",
			Name:                "Uranus",
			Category:            Planet,
			RadiusKm:            25362,
			Color:               mustHex("#8ad6ff"),
			ParentID:            "sun",
			RotationPeriodHours: -17.24,
			AxialTiltDeg:        97.77,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        19.18916464,
				Eccentricity:           0.04725744,
				InclinationDeg:         0.77263783,
				LongitudeAscendingNode: 74.01692503,
				ArgumentOfPeriapsis:    96.99835327,
				MeanAnomalyAtEpoch:     142.28382821,
				PeriodDays:             30685.4,
			},
		},
		{
			ID:           "miranda",
			Name:         "Miranda",
			Category:     Moon,
			RadiusKm:     235.8,
			Color:        mustHex("#ced5e4"),
			ParentID:     "uranus",
			RenderRadius: 0.45,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.000864919,
				Eccentricity:           0.0013,
				InclinationDeg:         4.2,
				LongitudeAscendingNode: 74.0,
				ArgumentOfPeriapsis:    68.0,
				MeanAnomalyAtEpoch:     30.0,
				PeriodDays:             1.413,
			},
		},
		{
			ID:           "ariel",
			Name:         "Ariel",
			Category:     Moon,
			RadiusKm:     578.9,
			Color:        mustHex("#bfcbe1"),
			ParentID:     "uranus",
			RenderRadius: 0.55,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.001276088,
				Eccentricity:           0.0012,
				InclinationDeg:         0.3,
				LongitudeAscendingNode: 74.0,
				ArgumentOfPeriapsis:    175.0,
				MeanAnomalyAtEpoch:     120.0,
				PeriodDays:             2.520,
			},
		},
		{
			ID:           "umbriel",
			Name:         "Umbriel",
			Category:     Moon,
			RadiusKm:     584.7,
			Color:        mustHex("#9ba8c1"),
			ParentID:     "uranus",
			RenderRadius: 0.55,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.0017781,
				Eccentricity:           0.0039,
				InclinationDeg:         0.4,
				LongitudeAscendingNode: 74.0,
				ArgumentOfPeriapsis:    80.0,
				MeanAnomalyAtEpoch:     200.0,
				PeriodDays:             4.144,
			},
		},
		{
			ID:           "titania",
			Name:         "Titania",
			Category:     Moon,
			RadiusKm:     788.4,
			Color:        mustHex("#c7c2c1"),
			ParentID:     "uranus",
			RenderRadius: 0.65,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.002913878,
				Eccentricity:           0.0011,
				InclinationDeg:         0.1,
				LongitudeAscendingNode: 74.0,
				ArgumentOfPeriapsis:    220.0,
				MeanAnomalyAtEpoch:     340.0,
				PeriodDays:             8.706,
			},
		},
		{
			ID:           "oberon",
			Name:         "Oberon",
			Category:     Moon,
			RadiusKm:     761.4,
			Color:        mustHex("#a7a0a1"),
			ParentID:     "uranus",
			RenderRadius: 0.6,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.00390059,
				Eccentricity:           0.0014,
				InclinationDeg:         0.1,
				LongitudeAscendingNode: 74.0,
				ArgumentOfPeriapsis:    160.0,
				MeanAnomalyAtEpoch:     60.0,
				PeriodDays:             13.463,
			},
		},
		{
			ID:                  "neptune",
			Name:                "Neptune",
			Category:            Planet,
			RadiusKm:            24622,
			Color:               mustHex("#4f6cff"),
			ParentID:            "sun",
			RotationPeriodHours: 16.11,
			AxialTiltDeg:        28.32,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        30.06992276,
				Eccentricity:           0.00859048,
				InclinationDeg:         1.77004347,
				LongitudeAscendingNode: 131.78422574,
				ArgumentOfPeriapsis:    273.18777979,
				MeanAnomalyAtEpoch:     259.91520804,
				PeriodDays:             60190.0,
			},
		},
		{
			ID:           "triton",
			Name:         "Triton",
			Category:     Moon,
			RadiusKm:     1353.4,
			Color:        mustHex("#d0d6e5"),
			ParentID:     "neptune",
			RenderRadius: 0.75,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.002371417,
				Eccentricity:           0.000016,
				InclinationDeg:         156.8,
				LongitudeAscendingNode: 130.0,
				ArgumentOfPeriapsis:    20.0,
				MeanAnomalyAtEpoch:     180.0,
				PeriodDays:             5.876854,
			},
		},
		{
			ID:           "proteus",
			Name:         "Proteus",
			Category:     Moon,
			RadiusKm:     210,
			Color:        mustHex("#808a9b"),
			ParentID:     "neptune",
			RenderRadius: 0.45,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        0.000786107,
				Eccentricity:           0.0005,
				InclinationDeg:         0.5,
				LongitudeAscendingNode: 130.0,
				ArgumentOfPeriapsis:    300.0,
				MeanAnomalyAtEpoch:     45.0,
				PeriodDays:             1.122,
			},
		},
		{
			ID:                  "ceres",
			Name:                "Ceres",
			Category:            DwarfPlanet,
			RadiusKm:            473,
			Color:               mustHex("#bbbcc5"),
			ParentID:            "sun",
			RotationPeriodHours: 9.074,
			AxialTiltDeg:        4,
			Orbit: &OrbitElements{
				SemiMajorAxisAU:        2.7675,
				Eccentricity:           0.0758,
				InclinationDeg:         10.593,
				LongitudeAscendingNode: 80.305,
				ArgumentOfPeriapsis:    73.597,
				MeanAnomalyAtEpoch:     95.989,
				PeriodDays:             1680.0,
			},
		},
	}
}
