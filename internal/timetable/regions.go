package timetable

// Region is a location whose sahar and iftar differ from the Tashkent base by
// a fixed number of minutes. Offsets may be negative, zero, or positive.
type Region struct {
	Key         string
	NameUZ      string
	NameRU      string
	SaharOffset int
	IftarOffset int
}

var regions = []Region{
	{Key: "toshkent", NameUZ: "Toshkent", NameRU: "Ташкент", SaharOffset: 0, IftarOffset: 0},
	{Key: "angren", NameUZ: "Angren", NameRU: "Ангрен", SaharOffset: -3, IftarOffset: -4},
	{Key: "parkent", NameUZ: "Parkent", NameRU: "Паркент", SaharOffset: -2, IftarOffset: -2},
	{Key: "andijon", NameUZ: "Andijon", NameRU: "Андижан", SaharOffset: -12, IftarOffset: -13},
	{Key: "xonobod", NameUZ: "Xonobod", NameRU: "Ханабад", SaharOffset: -14, IftarOffset: -15},
	{Key: "shahrixon", NameUZ: "Shahrixon", NameRU: "Шахрихан", SaharOffset: -10, IftarOffset: -12},
	{Key: "xojaobod", NameUZ: "Xo'jaobod", NameRU: "Ходжаобод", SaharOffset: -12, IftarOffset: -14},
	{Key: "namangan", NameUZ: "Namangan", NameRU: "Наманган", SaharOffset: -9, IftarOffset: -10},
	{Key: "pop", NameUZ: "Pop", NameRU: "Пап", SaharOffset: -6, IftarOffset: -7},
	{Key: "chortoq", NameUZ: "Chortoq", NameRU: "Чартак", SaharOffset: -10, IftarOffset: -11},
	{Key: "kosonsoy", NameUZ: "Kosonsoy", NameRU: "Касансай", SaharOffset: -9, IftarOffset: -9},
	{Key: "fargona", NameUZ: "Farg'ona", NameRU: "Фергана", SaharOffset: -7, IftarOffset: -9},
	{Key: "rishton", NameUZ: "Rishton", NameRU: "Риштан", SaharOffset: -6, IftarOffset: -9},
	{Key: "qoqon", NameUZ: "Qo'qon", NameRU: "Коканд", SaharOffset: -5, IftarOffset: -7},
	{Key: "margilon", NameUZ: "Marg'ilon", NameRU: "Маргилан", SaharOffset: -9, IftarOffset: -11},
	{Key: "bekobod", NameUZ: "Bekobod", NameRU: "Бекабад", SaharOffset: 2, IftarOffset: 1},
	{Key: "buxoro", NameUZ: "Buxoro", NameRU: "Бухара", SaharOffset: 24, IftarOffset: 22},
	{Key: "gazli", NameUZ: "Gazli", NameRU: "Газли", SaharOffset: 25, IftarOffset: 24},
	{Key: "gijduvon", NameUZ: "G'ijduvon", NameRU: "Гиждуван", SaharOffset: 19, IftarOffset: 18},
	{Key: "qorakol", NameUZ: "Qorako'l", NameRU: "Каракуль", SaharOffset: 27, IftarOffset: 26},
	{Key: "guliston", NameUZ: "Guliston", NameRU: "Гулистан", SaharOffset: 3, IftarOffset: 2},
	{Key: "sardoba", NameUZ: "Sardoba", NameRU: "Сардаба", SaharOffset: 3, IftarOffset: 2},
	{Key: "jizzax", NameUZ: "Jizzax", NameRU: "Джизак", SaharOffset: 8, IftarOffset: 7},
	{Key: "zomin", NameUZ: "Zomin", NameRU: "Заамин", SaharOffset: 6, IftarOffset: 4},
	{Key: "forish", NameUZ: "Forish", NameRU: "Фариш", SaharOffset: 9, IftarOffset: 8},
	{Key: "gallaorol", NameUZ: "G'allaorol", NameRU: "Галляарал", SaharOffset: 10, IftarOffset: 8},
	{Key: "navoiy", NameUZ: "Navoiy", NameRU: "Навои", SaharOffset: 20, IftarOffset: 21},
	{Key: "zarafshon", NameUZ: "Zarafshon", NameRU: "Зарафшан", SaharOffset: 20, IftarOffset: 18},
	{Key: "konimex", NameUZ: "Konimex", NameRU: "Конимех", SaharOffset: 19, IftarOffset: 18},
	{Key: "nurota", NameUZ: "Nurota", NameRU: "Нурата", SaharOffset: 15, IftarOffset: 14},
	{Key: "uchquduq", NameUZ: "Uchquduq", NameRU: "Учкудук", SaharOffset: 10, IftarOffset: 9},
	{Key: "nukus", NameUZ: "Nukus", NameRU: "Нукус", SaharOffset: 38, IftarOffset: 39},
	{Key: "moynoq", NameUZ: "Mo'ynoq", NameRU: "Муйнак", SaharOffset: 37, IftarOffset: 40},
	{Key: "taxtakopir", NameUZ: "Taxtako'pir", NameRU: "Тахтакупыр", SaharOffset: 31, IftarOffset: 33},
	{Key: "qongirot", NameUZ: "Qo'ng'irot", NameRU: "Кунград", SaharOffset: 40, IftarOffset: 42},
	{Key: "samarqand", NameUZ: "Samarqand", NameRU: "Самарканд", SaharOffset: 15, IftarOffset: 13},
	{Key: "ishtixon", NameUZ: "Ishtixon", NameRU: "Иштыхан", SaharOffset: 13, IftarOffset: 11},
	{Key: "mirbozor", NameUZ: "Mirbozor", NameRU: "Мирбозор", SaharOffset: 16, IftarOffset: 14},
	{Key: "kattaqorgon", NameUZ: "Kattaqo'rg'on", NameRU: "Каттакурган", SaharOffset: 14, IftarOffset: 12},
	{Key: "urgut", NameUZ: "Urgut", NameRU: "Ургут", SaharOffset: 11, IftarOffset: 9},
	{Key: "termiz", NameUZ: "Termiz", NameRU: "Термез", SaharOffset: 14, IftarOffset: 9},
	{Key: "boysun", NameUZ: "Boysun", NameRU: "Байсун", SaharOffset: 13, IftarOffset: 9},
	{Key: "shorchi", NameUZ: "Sho'rchi", NameRU: "Шурчи", SaharOffset: 11, IftarOffset: 7},
	{Key: "qarshi", NameUZ: "Qarshi", NameRU: "Карши", SaharOffset: 18, IftarOffset: 15},
	{Key: "dehqonobod", NameUZ: "Dehqonobod", NameRU: "Дехканабад", SaharOffset: 15, IftarOffset: 12},
	{Key: "koson", NameUZ: "Koson", NameRU: "Касан", SaharOffset: 17, IftarOffset: 15},
	{Key: "muborak", NameUZ: "Muborak", NameRU: "Мубарек", SaharOffset: 19, IftarOffset: 17},
	{Key: "shahrisabz", NameUZ: "Shahrisabz", NameRU: "Шахрисабз", SaharOffset: 14, IftarOffset: 11},
	{Key: "guzor", NameUZ: "G'uzor", NameRU: "Гузар", SaharOffset: 17, IftarOffset: 14},
}

// regionIndex is built once from the regions slice for key lookup.
var regionIndex = func() map[string]Region {
	m := make(map[string]Region, len(regions))
	for _, r := range regions {
		m[r.Key] = r
	}
	return m
}()

// RegionByKey looks a region up by its key.
func RegionByKey(key string) (Region, bool) {
	r, ok := regionIndex[key]
	return r, ok
}

// Regions returns all regions in their fixed table order.
func Regions() []Region { return regions }
