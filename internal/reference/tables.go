package reference

var (
  Countries = NewTable([]Entry{
    {Name: "абхазия", ID: "1"},
    {Name: "австрия", ID: "3"},
    {Name: "андорра", ID: "4"},
    {Name: "армения", ID: "6"},
    {Name: "бахрейн", ID: "10"},
    {Name: "беларусь", ID: "11"},
    {Name: "бельгия", ID: "12"},
    {Name: "болгария", ID: "13"},
    {Name: "бразилия", ID: "16"},
    {Name: "великобритания", ID: "19"},
    {Name: "венгрия", ID: "20"},
    {Name: "вьетнам", ID: "22"},
    {Name: "германия", ID: "24"},
    {Name: "греция", ID: "26"},
    {Name: "дания", ID: "27"},
    {Name: "доминикана", ID: "28"},
    {Name: "египет", ID: "29"},
    {Name: "израиль", ID: "32"},
    {Name: "индия", ID: "33"},
    {Name: "индонезия", ID: "34"},
    {Name: "иордания", ID: "35"},
    {Name: "ирландия", ID: "36"},
    {Name: "испания", ID: "38"},
    {Name: "италия", ID: "39"},
    {Name: "камбоджа", ID: "41"},
    {Name: "кипр", ID: "43"},
    {Name: "китай", ID: "44"},
    {Name: "коста-рика", ID: "47"},
    {Name: "куба", ID: "48"},
    {Name: "кыргызстан", ID: "49"},
    {Name: "латвия", ID: "50"},
    {Name: "литва", ID: "52"},
    {Name: "маврикий", ID: "53"},
    {Name: "малайзия", ID: "55"},
    {Name: "мальдивы", ID: "56"},
    {Name: "мальта", ID: "57"},
    {Name: "марокко", ID: "59"},
    {Name: "мексика", ID: "60"},
    {Name: "нидерланды", ID: "65"},
    {Name: "норвегия", ID: "67"},
    {Name: "оаэ", ID: "68"},
    {Name: "оман", ID: "69"},
    {Name: "польша", ID: "74"},
    {Name: "португалия", ID: "75"},
    {Name: "россия", ID: "76"},
    {Name: "румыния", ID: "77"},
    {Name: "сейшелы", ID: "78"},
    {Name: "сербия", ID: "81"},
    {Name: "сингапур", ID: "82"},
    {Name: "словакия", ID: "83"},
    {Name: "словения", ID: "84"},
    {Name: "сша", ID: "85"},
    {Name: "таиланд", ID: "87"},
    {Name: "танзания", ID: "88"},
    {Name: "тунис", ID: "91"},
    {Name: "турция", ID: "92"},
    {Name: "узбекистан", ID: "94"},
    {Name: "филиппины", ID: "97"},
    {Name: "финляндия", ID: "98"},
    {Name: "франция", ID: "99"},
    {Name: "хорватия", ID: "101"},
    {Name: "черногория", ID: "104"},
    {Name: "чехия", ID: "105"},
    {Name: "швейцария", ID: "107"},
    {Name: "швеция", ID: "108"},
    {Name: "шри-ланка", ID: "110"},
    {Name: "эстония", ID: "113"},
    {Name: "юар", ID: "115"},
    {Name: "южная корея", ID: "116"},
    {Name: "ямайка", ID: "117"},
    {Name: "япония", ID: "118"},
    {Name: "азербайджан", ID: "119"},
    {Name: "албания", ID: "120"},
    {Name: "грузия", ID: "129"},
    {Name: "катар", ID: "135"},
    {Name: "казахстан", ID: "156"},
    {Name: "гамбия", ID: "157"},
    {Name: "саудовская аравия", ID: "260"},
    {Name: "туркменистан", ID: "293"},
    {Name: "таджикистан", ID: "294"},
    {Name: "сан-марино", ID: "224"},
  })

  DepartureCities = NewTable([]Entry{
    {Name: "абакан", ID: "90"},
    {Name: "архангельск", ID: "8"},
    {Name: "астрахань", ID: "10"},
    {Name: "барнаул", ID: "12"},
    {Name: "белгород", ID: "13"},
    {Name: "благовещенск", ID: "15"},
    {Name: "брянск", ID: "18"},
    {Name: "владивосток", ID: "19"},
    {Name: "владикавказ", ID: "20"},
    {Name: "волгоград", ID: "21"},
    {Name: "воронеж", ID: "22"},
    {Name: "екатеринбург", ID: "25"},
    {Name: "иркутск", ID: "28"},
    {Name: "казань", ID: "29"},
    {Name: "калининград", ID: "30"},
    {Name: "кемерово", ID: "32"},
    {Name: "краснодар", ID: "36"},
    {Name: "красноярск", ID: "37"},
    {Name: "курган", ID: "38"},
    {Name: "курск", ID: "39"},
    {Name: "липецк", ID: "91"},
    {Name: "магадан", ID: "42"},
    {Name: "магнитогорск", ID: "43"},
    {Name: "махачкала", ID: "92"},
    {Name: "минеральные воды", ID: "44"},
    {Name: "москва", ID: "2"},
    {Name: "мурманск", ID: "46"},
    {Name: "нальчик", ID: "47"},
    {Name: "нижневартовск", ID: "48"},
    {Name: "нижний новгород", ID: "50"},
    {Name: "новокузнецк", ID: "51"},
    {Name: "новороссийск", ID: "52"},
    {Name: "новосибирск", ID: "53"},
    {Name: "омск", ID: "56"},
    {Name: "оренбург", ID: "57"},
    {Name: "пенза", ID: "60"},
    {Name: "пермь", ID: "61"},
    {Name: "петропавловск-камчатский", ID: "62"},
    {Name: "ростов-на-дону", ID: "63"},
    {Name: "самара", ID: "64"},
    {Name: "санкт-петербург", ID: "1"},
    {Name: "саратов", ID: "65"},
    {Name: "симферополь", ID: "66"},
    {Name: "сочи", ID: "67"},
    {Name: "ставрополь", ID: "93"},
    {Name: "сургут", ID: "68"},
    {Name: "сыктывкар", ID: "70"},
    {Name: "тольятти", ID: "71"},
    {Name: "томск", ID: "72"},
    {Name: "тюмень", ID: "74"},
    {Name: "улан-удэ", ID: "75"},
    {Name: "ульяновск", ID: "76"},
    {Name: "уфа", ID: "79"},
    {Name: "хабаровск", ID: "80"},
    {Name: "ханты-мансийск", ID: "81"},
    {Name: "чебоксары", ID: "83"},
    {Name: "челябинск", ID: "84"},
    {Name: "чита", ID: "85"},
    {Name: "южно-сахалинск", ID: "87"},
    {Name: "якутск", ID: "88"},
  })

  Resorts = NewTable([]Entry{
    {Name: "гагра", ID: "1"},
    {Name: "сухум", ID: "6"},
    {Name: "пицунда", ID: "5"},
    {Name: "гудаута", ID: "2"},
    {Name: "новый афон", ID: "3"},
    {Name: "очамчыра", ID: "4"},
    {Name: "цандрипш", ID: "3899"},
    {Name: "вена", ID: "33"},
    {Name: "зальцбург", ID: "36"},
    {Name: "майрхофен", ID: "50"},
    {Name: "зёльден", ID: "40"},
    {Name: "ишгль", ID: "43"},
    {Name: "каринтия", ID: "44"},
    {Name: "капрун", ID: "2806"},
    {Name: "целль-ам-зе", ID: "2821"},
    {Name: "андорра ла велла", ID: "60"},
    {Name: "эскальдес", ID: "2832"},
    {Name: "пас де ла каса", ID: "2829"},
    {Name: "ла массана", ID: "3030"},
    {Name: "гранд валира", ID: "62"},
    {Name: "ереван", ID: "103"},
    {Name: "джульфа", ID: "101"},
    {Name: "цакхадзор", ID: "105"},
    {Name: "раздан", ID: "102"},
    {Name: "албена", ID: "175"},
    {Name: "банско", ID: "181"},
    {Name: "боровец", ID: "185"},
    {Name: "золотые пески", ID: "200"},
    {Name: "несебр", ID: "215"},
    {Name: "солнечный берег", ID: "241"},
    {Name: "св. константин и елена", ID: "235"},
    {Name: "святой влас", ID: "236"},
    {Name: "поморие", ID: "223"},
    {Name: "елините", ID: "199"},
    {Name: "фантхьет", ID: "428"},
    {Name: "муйне", ID: "428"},
    {Name: "ньячанг", ID: "417"},
    {Name: "фукуок", ID: "429"},
    {Name: "дананг", ID: "405"},
    {Name: "ханой", ID: "432"},
    {Name: "хошимин", ID: "434"},
    {Name: "сапа", ID: "424"},
    {Name: "хюэ", ID: "435"},
    {Name: "халонг", ID: "431"},
    {Name: "крит", ID: "3163"},
    {Name: "афины", ID: "468"},
    {Name: "салоники", ID: "529"},
    {Name: "корфу", ID: "497"},
    {Name: "родос", ID: "509"},
    {Name: "закинф", ID: "489"},
    {Name: "кос", ID: "498"},
    {Name: "санторини", ID: "530"},
    {Name: "халкидики", ID: "3164"},
    {Name: "пунта кана", ID: "571"},
    {Name: "ла романа", ID: "566"},
    {Name: "пуэрто плата", ID: "572"},
    {Name: "самана", ID: "573"},
    {Name: "баваро", ID: "571"},
    {Name: "кабарете", ID: "563"},
    {Name: "шарм-эль-шейх", ID: "598"},
    {Name: "хургада", ID: "597"},
    {Name: "марса алам", ID: "592"},
    {Name: "таба", ID: "596"},
    {Name: "дахаб", ID: "586"},
    {Name: "эль гуна", ID: "599"},
    {Name: "сома бей", ID: "595"},
    {Name: "макади", ID: "591"},
    {Name: "сафага", ID: "594"},
    {Name: "нувейба", ID: "593"},
    {Name: "барселона", ID: "747"},
    {Name: "мадрид", ID: "786"},
    {Name: "коста брава", ID: "770"},
    {Name: "коста дель соль", ID: "773"},
    {Name: "коста бланка", ID: "769"},
    {Name: "коста дорада", ID: "774"},
    {Name: "майорка", ID: "787"},
    {Name: "тенерифе", ID: "763"},
    {Name: "ибица", ID: "795"},
    {Name: "льорет де мар", ID: "782"},
    {Name: "рим", ID: "880"},
    {Name: "милан", ID: "863"},
    {Name: "венеция", ID: "842"},
    {Name: "флоренция", ID: "892"},
    {Name: "неаполь", ID: "866"},
    {Name: "римини", ID: "881"},
    {Name: "сицилия", ID: "868"},
    {Name: "сардиния", ID: "885"},
    {Name: "капри", ID: "851"},
    {Name: "исачия", ID: "867"},
    {Name: "айя-напа", ID: "919"},
    {Name: "протарас", ID: "926"},
    {Name: "ларнака", ID: "920"},
    {Name: "лимассол", ID: "922"},
    {Name: "пафос", ID: "2869"},
    {Name: "полис", ID: "925"},
    {Name: "варадеро", ID: "1001"},
    {Name: "гавана", ID: "1004"},
    {Name: "кайо коко", ID: "1011"},
    {Name: "кайо ларго", ID: "1012"},
    {Name: "кайо гильермо", ID: "1010"},
    {Name: "кайо санта мария", ID: "1014"},
    {Name: "ольгин", ID: "1016"},
    {Name: "сантьяго де куба", ID: "1020"},
    {Name: "мале", ID: "1142"},
    {Name: "северный мале атолл", ID: "1148"},
    {Name: "южный мале атолл", ID: "1152"},
    {Name: "ари атолл", ID: "1136"},
    {Name: "баа атолл", ID: "1137"},
    {Name: "раа атолл", ID: "1146"},
    {Name: "даалу атолл", ID: "1139"},
    {Name: "лавиани атолл", ID: "1141"},
    {Name: "дубай", ID: "1379"},
    {Name: "абу даби", ID: "1377"},
    {Name: "шарджа", ID: "1385"},
    {Name: "аджман", ID: "1378"},
    {Name: "рас-эль-хайма", ID: "1381"},
    {Name: "фуджейра", ID: "1384"},
    {Name: "ум аль кувейн", ID: "1383"},
    {Name: "сочи", ID: "3097"},
    {Name: "адлер", ID: "1545"},
    {Name: "лазаревское", ID: "1704"},
    {Name: "хоста", ID: "3124"},
    {Name: "дагомыс", ID: "1620"},
    {Name: "алушта", ID: "2202"},
    {Name: "ялта", ID: "2280"},
    {Name: "симферополь", ID: "2255"},
    {Name: "евпатория", ID: "2253"},
    {Name: "феодосия", ID: "2265"},
    {Name: "судак", ID: "2258"},
    {Name: "керчь", ID: "2224"},
    {Name: "севастополь", ID: "2253"},
    {Name: "анапа", ID: "3974"},
    {Name: "геленджик", ID: "1610"},
    {Name: "туапсе", ID: "1868"},
    {Name: "паттайя", ID: "2100"},
    {Name: "пхукет", ID: "4191"},
    {Name: "самуи", ID: "2098"},
    {Name: "пхи-пхи", ID: "2112"},
    {Name: "краби", ID: "2103"},
    {Name: "чанг", ID: "2099"},
    {Name: "бангкок", ID: "2084"},
    {Name: "ча-ам", ID: "2126"},
    {Name: "хуа хин", ID: "2125"},
    {Name: "као лак", ID: "2086"},
    {Name: "джерба", ID: "2142"},
    {Name: "сусс", ID: "2150"},
    {Name: "хаммамет", ID: "2155"},
    {Name: "монастир", ID: "2147"},
    {Name: "махдия", ID: "2146"},
    {Name: "анталья", ID: "2161"},
    {Name: "кемер", ID: "3839"},
    {Name: "белек", ID: "2162"},
    {Name: "сиде", ID: "3828"},
    {Name: "алания", ID: "2159"},
    {Name: "мармарис", ID: "2178"},
    {Name: "бодрум", ID: "2163"},
    {Name: "кушадасы", ID: "2177"},
    {Name: "фетхие", ID: "2190"},
    {Name: "даламан", ID: "2167"},
    {Name: "измир", ID: "2169"},
    {Name: "стамбул", ID: "2185"},
    {Name: "каппадокия", ID: "2172"},
    {Name: "памуккале", ID: "2182"},
    {Name: "будва", ID: "3011"},
    {Name: "котор", ID: "3020"},
    {Name: "тиват", ID: "2514"},
    {Name: "петровац", ID: "3015"},
    {Name: "свети стефан", ID: "3018"},
    {Name: "бечичи", ID: "3010"},
    {Name: "герцег нови", ID: "3050"},
    {Name: "прага", ID: "2535"},
    {Name: "карловы вары", ID: "2521"},
    {Name: "марианские лазне", ID: "2528"},
    {Name: "коломбо", ID: "2673"},
    {Name: "бентота", ID: "2652"},
    {Name: "негомбо", ID: "2681"},
    {Name: "хиккадува", ID: "2698"},
    {Name: "мирисса", ID: "2680"},
    {Name: "унаватуна", ID: "2695"},
    {Name: "галле", ID: "2658"},
    {Name: "тринкомали", ID: "2694"},
    {Name: "нувара элия", ID: "2683"},
    {Name: "канди", ID: "2668"},
    {Name: "батуми", ID: "2968"},
    {Name: "тбилиси", ID: "2976"},
    {Name: "кутаиси", ID: "2973"},
    {Name: "боржоми", ID: "3234"},
    {Name: "бакуриани", ID: "2967"},
    {Name: "гудаури", ID: "2970"},
    {Name: "кобулети", ID: "2972"},
    {Name: "алматы", ID: "3244"},
    {Name: "астана", ID: "3245"},
    {Name: "актау", ID: "3242"},
    {Name: "атырау", ID: "3246"},
    {Name: "ташкент", ID: "2199"},
    {Name: "самарканд", ID: "2198"},
    {Name: "бухара", ID: "2197"},
    {Name: "хива", ID: "2200"},
  })

  Meals = NewTable([]Entry{
    {Name: "RO", ID: "1"},
    {Name: "BB", ID: "2"},
    {Name: "HB", ID: "3"},
    {Name: "FB", ID: "4"},
    {Name: "AI", ID: "5"},
    {Name: "UAI", ID: "6"},
    {Name: "AI(NOALC)", ID: "7"},
  })
)
