package settings

// catalog lists every setting a session can negotiate.  The trailing
// client-only entries configure the connection and are never sent.
var catalog = []Setting{
	{Name: "min_compress_block_size", Kind: Int64, Description: "The actual size of the block to compress, if the uncompressed data less than max_compress_block_size is no less than this value and no less than the volume of data for one mark."},
	{Name: "max_compress_block_size", Kind: Int64, Description: "The maximum size of blocks of uncompressed data before compressing for writing to a table."},
	{Name: "max_block_size", Kind: Int64, Description: "Maximum block size for reading"},
	{Name: "max_insert_block_size", Kind: Int64, Description: "The maximum block size for insertion, if we control the creation of blocks for insertion."},
	{Name: "min_insert_block_size_rows", Kind: Int64, Description: "Squash blocks passed to INSERT query to specified size in rows, if blocks are not big enough."},
	{Name: "min_insert_block_size_bytes", Kind: Int64, Description: "Squash blocks passed to INSERT query to specified size in bytes, if blocks are not big enough."},
	{Name: "max_read_buffer_size", Kind: Int64, Description: "The maximum size of the buffer to read from the filesystem."},
	{Name: "max_distributed_connections", Kind: Int64, Description: "The maximum number of connections for distributed processing of one query (should be greater than max_threads)."},
	{Name: "max_query_size", Kind: Int64, Description: "Which part of the query can be read into RAM for parsing (the remaining data for INSERT, if any, is read later)"},
	{Name: "interactive_delay", Kind: Int64, Description: "The interval in microseconds to check if the request is cancelled, and to send progress info."},
	{Name: "connect_timeout", Kind: Seconds, Description: "Connection timeout if there are no replicas."},
	{Name: "connect_timeout_with_failover_ms", Kind: Milliseconds, Description: "Connection timeout for selecting first healthy replica."},
	{Name: "queue_max_wait_ms", Kind: Milliseconds, Description: "The wait time in the request queue, if the number of concurrent requests exceeds the maximum."},
	{Name: "poll_interval", Kind: Int64, Description: "Block at the query wait loop on the server for the specified number of seconds."},
	{Name: "distributed_connections_pool_size", Kind: Int64, Description: "Maximum number of connections with one remote server in the pool."},
	{Name: "connections_with_failover_max_tries", Kind: Int64, Description: "The maximum number of attempts to connect to replicas."},
	{Name: "extremes", Kind: Boolean, Description: "Calculate minimums and maximums of the result columns. They can be output in JSON-formats."},
	{Name: "use_uncompressed_cache", Kind: Boolean, Description: "Whether to use the cache of uncompressed blocks."},
	{Name: "replace_running_query", Kind: Boolean, Description: "Whether the running request should be canceled with the same id as the new one."},
	{Name: "background_pool_size", Kind: Int64, Description: "Number of threads performing background work for tables (for example, merging in merge tree). Only has meaning at server startup."},
	{Name: "background_schedule_pool_size", Kind: Int64, Description: "Number of threads performing background tasks for replicated tables. Only has meaning at server startup."},
	{Name: "distributed_directory_monitor_sleep_time_ms", Kind: Milliseconds, Description: "Sleep time for StorageDistributed DirectoryMonitors in case there is no work or exception has been thrown."},
	{Name: "distributed_directory_monitor_batch_inserts", Kind: Boolean, Description: "Should StorageDistributed DirectoryMonitors try to batch individual inserts into bigger ones."},
	{Name: "optimize_move_to_prewhere", Kind: Boolean, Description: "Allows disabling WHERE to PREWHERE optimization in SELECT queries from MergeTree."},
	{Name: "replication_alter_partitions_sync", Kind: Int64, Description: "Wait for actions to manipulate the partitions. 0 - do not wait, 1 - wait for execution only of itself, 2 - wait for everyone."},
	{Name: "replication_alter_columns_timeout", Kind: Int64, Description: "Wait for actions to change the table structure within the specified number of seconds. 0 - wait unlimited time."},
	{Name: "totals_auto_threshold", Kind: Float, Description: "The threshold for totals_mode = 'auto'."},
	{Name: "compile", Kind: Boolean, Description: "Whether query compilation is enabled."},
	{Name: "compile_expressions", Kind: Boolean, Description: "Compile some scalar functions and operators to native code."},
	{Name: "min_count_to_compile", Kind: Int64, Description: "The number of structurally identical queries before they are compiled."},
	{Name: "group_by_two_level_threshold", Kind: Int64, Description: "From what number of keys, a two-level aggregation starts. 0 - the threshold is not set."},
	{Name: "group_by_two_level_threshold_bytes", Kind: Int64, Description: "From what size of the aggregation state in bytes, a two-level aggregation begins to be used. 0 - the threshold is not set. Two-level aggregation is used when at least one of the thresholds is triggered."},
	{Name: "distributed_aggregation_memory_efficient", Kind: Boolean, Description: "Is the memory-saving mode of distributed aggregation enabled."},
	{Name: "aggregation_memory_efficient_merge_threads", Kind: Int64, Description: "Number of threads to use for merge intermediate aggregation results in memory efficient mode. When bigger, then more memory is consumed. 0 means - same as 'max_threads'."},
	{Name: "max_threads", Kind: Int64, Description: "The maximum number of threads to execute the request. By default, it is determined automatically."},
	{Name: "max_parallel_replicas", Kind: Int64, Description: "The maximum number of replicas of each shard used when the query is executed. For consistency (to get different parts of the same partition), this option only works for the specified sampling key. The lag of the replicas is not controlled."},
	{Name: "skip_unavailable_shards", Kind: Boolean, Description: "Silently skip unavailable shards."},
	{Name: "distributed_group_by_no_merge", Kind: Boolean, Description: "Do not merge aggregation states from different servers for distributed query processing - in case it is for certain that there are different keys on different shards."},
	{Name: "merge_tree_min_rows_for_concurrent_read", Kind: Int64, Description: "If at least as many lines are read from one file, the reading can be parallelized."},
	{Name: "merge_tree_min_rows_for_seek", Kind: Int64, Description: "You can skip reading more than that number of rows at the price of one seek per file."},
	{Name: "merge_tree_coarse_index_granularity", Kind: Int64, Description: "If the index segment can contain the required keys, divide it into as many parts and recursively check them."},
	{Name: "merge_tree_max_rows_to_use_cache", Kind: Int64, Description: "The maximum number of rows per request, to use the cache of uncompressed data. If the request is large, the cache is not used. (For large queries not to flush out the cache.)"},
	{Name: "merge_tree_uniform_read_distribution", Kind: Boolean, Description: "Distribute read from MergeTree over threads evenly, ensuring stable average execution time of each thread within one read operation."},
	{Name: "mysql_max_rows_to_insert", Kind: Int64, Description: "The maximum number of rows in MySQL batch insertion of the MySQL storage engine"},
	{Name: "optimize_min_equality_disjunction_chain_length", Kind: Int64, Description: "The minimum length of the expression `expr = x1 OR ... expr = xN` for optimization"},
	{Name: "min_bytes_to_use_direct_io", Kind: Int64, Description: "The minimum number of bytes for input/output operations is bypassing the page cache. 0 - disabled."},
	{Name: "force_index_by_date", Kind: Boolean, Description: "Throw an exception if there is a partition key in a table, and it is not used."},
	{Name: "force_primary_key", Kind: Boolean, Description: "Throw an exception if there is primary key in a table, and it is not used."},
	{Name: "mark_cache_min_lifetime", Kind: Int64, Description: "If the maximum size of mark_cache is exceeded, delete only records older than mark_cache_min_lifetime seconds."},
	{Name: "max_streams_to_max_threads_ratio", Kind: Float, Description: "Allows you to use more sources than the number of threads - to more evenly distribute work across threads. It is assumed that this is a temporary solution, since it will be possible in the future to make the number of sources equal to the number of threads, but for each source to dynamically select available work for itself."},
	{Name: "network_zstd_compression_level", Kind: Int64, Description: "Allows you to select the level of ZSTD compression."},
	{Name: "priority", Kind: Int64, Description: "Priority of the query. 1 - the highest, higher value - lower priority; 0 - do not use priorities."},
	{Name: "log_queries", Kind: Boolean, Description: "Log requests and write the log to the system table."},
	{Name: "log_queries_cut_to_length", Kind: Int64, Description: "If query length is greater than specified threshold (in bytes), then cut query when writing to query log. Also limit length of printed query in ordinary text log."},
	{Name: "max_concurrent_queries_for_user", Kind: Int64, Description: "The maximum number of concurrent requests per user."},
	{Name: "insert_deduplicate", Kind: Boolean, Description: "For INSERT queries in the replicated table, specifies that deduplication of insertings blocks should be preformed"},
	{Name: "insert_quorum", Kind: Int64, Description: "For INSERT queries in the replicated table, wait writing for the specified number of replicas and linearize the addition of the data. 0 - disabled."},
	{Name: "select_sequential_consistency", Kind: Int64, Description: "For SELECT queries from the replicated table, throw an exception if the replica does not have a chunk written with the quorum; do not read the parts that have not yet been written with the quorum."},
	{Name: "table_function_remote_max_addresses", Kind: Int64, Description: "The maximum number of different shards and the maximum number of replicas of one shard in the `remote` function."},
	{Name: "read_backoff_min_latency_ms", Kind: Milliseconds, Description: "Setting to reduce the number of threads in case of slow reads. Pay attention only to reads that took at least that much time."},
	{Name: "read_backoff_max_throughput", Kind: Int64, Description: "Settings to reduce the number of threads in case of slow reads. Count events when the read bandwidth is less than that many bytes per second."},
	{Name: "read_backoff_min_interval_between_events_ms", Kind: Milliseconds, Description: "Settings to reduce the number of threads in case of slow reads. Do not pay attention to the event, if the previous one has passed less than a certain amount of time."},
	{Name: "read_backoff_min_events", Kind: Int64, Description: "Settings to reduce the number of threads in case of slow reads. The number of events after which the number of threads will be reduced."},
	{Name: "memory_tracker_fault_probability", Kind: Float, Description: "For testing of `exception safety` - throw an exception every time you allocate memory with the specified probability."},
	{Name: "enable_http_compression", Kind: Boolean, Description: "Compress the result if the client over HTTP said that it understands data compressed by gzip or deflate."},
	{Name: "http_zlib_compression_level", Kind: Int64, Description: "Compression level - used if the client on HTTP said that it understands data compressed by gzip or deflate."},
	{Name: "http_native_compression_disable_checksumming_on_decompress", Kind: Boolean, Description: "If you uncompress the POST data from the client compressed by the native format, do not check the checksum."},
	{Name: "count_distinct_implementation", Kind: String, Description: "What aggregate function to use for implementation of count(DISTINCT ...)"},
	{Name: "output_format_write_statistics", Kind: Boolean, Description: "Write statistics about read rows, bytes, time elapsed in suitable output formats."},
	{Name: "add_http_cors_header", Kind: Boolean, Description: "Write add http CORS header."},
	{Name: "input_format_skip_unknown_fields", Kind: Boolean, Description: "Skip columns with unknown names from input data (it works for JSONEachRow and TSKV formats)."},
	{Name: "input_format_values_interpret_expressions", Kind: Boolean, Description: "For Values format: if field could not be parsed by streaming parser, run SQL parser and try to interpret it as SQL expression."},
	{Name: "output_format_json_quote_64bit_integers", Kind: Boolean, Description: "Controls quoting of 64-bit integers in JSON output format."},
	{Name: "output_format_json_quote_denormals", Kind: Boolean, Description: "Enables '+nan', '-nan', '+inf', '-inf' outputs in JSON output format."},
	{Name: "output_format_pretty_max_rows", Kind: Int64, Description: "Rows limit for Pretty formats."},
	{Name: "use_client_time_zone", Kind: Boolean, Description: "Use client timezone for interpreting DateTime string values, instead of adopting server timezone."},
	{Name: "send_progress_in_http_headers", Kind: Boolean, Description: "Send progress notifications using X-ClickHouse-Progress headers. Some clients do not support high amount of HTTP headers (Python requests in particular), so it is disabled by default."},
	{Name: "http_headers_progress_interval_ms", Kind: Int64, Description: "Do not send HTTP headers X-ClickHouse-Progress more frequently than at each specified interval."},
	{Name: "fsync_metadata", Kind: Boolean, Description: "Do fsync after changing metadata for tables and databases (.sql files). Could be disabled in case of poor latency on server with high load of DDL queries and high load of disk subsystem."},
	{Name: "input_format_allow_errors_num", Kind: Int64, Description: "Maximum absolute amount of errors while reading text formats (like CSV, TSV). In case of error, if both absolute and relative values are non-zero, and at least absolute or relative amount of errors is lower than corresponding value, will skip until next line and continue."},
	{Name: "input_format_allow_errors_ratio", Kind: Float, Description: "Maximum relative amount of errors while reading text formats (like CSV, TSV). In case of error, if both absolute and relative values are non-zero, and at least absolute or relative amount of errors is lower than corresponding value, will skip until next line and continue."},
	{Name: "join_use_nulls", Kind: Boolean, Description: "Use NULLs for non-joined rows of outer JOINs. If false, use default value of corresponding columns data type."},
	{Name: "max_replica_delay_for_distributed_queries", Kind: Int64, Description: "If set, distributed queries of Replicated tables will choose servers with replication delay in seconds less than the specified value (not inclusive). Zero means do not take delay into account."},
	{Name: "fallback_to_stale_replicas_for_distributed_queries", Kind: Boolean, Description: "Suppose max_replica_delay_for_distributed_queries is set and all replicas for the queried table are stale. If this setting is enabled, the query will be performed anyway, otherwise the error will be reported."},
	{Name: "preferred_max_column_in_block_size_bytes", Kind: Int64, Description: "Limit on max column size in block while reading. Helps to decrease cache misses count. Should be close to L2 cache size."},
	{Name: "insert_distributed_sync", Kind: Boolean, Description: "If setting is enabled, insert query into distributed waits until data will be sent to all nodes in cluster."},
	{Name: "insert_distributed_timeout", Kind: Int64, Description: "Timeout for insert query into distributed. Setting is used only with insert_distributed_sync enabled. Zero value means no timeout."},
	{Name: "distributed_ddl_task_timeout", Kind: Int64, Description: "Timeout for DDL query responses from all hosts in cluster. Negative value means infinite."},
	{Name: "stream_flush_interval_ms", Kind: Milliseconds, Description: "Timeout for flushing data from streaming storages."},
	{Name: "format_schema", Kind: String, Description: "Schema identifier (used by schema-based formats)"},
	{Name: "insert_allow_materialized_columns", Kind: Boolean, Description: "If setting is enabled, Allow materialized columns in INSERT."},
	{Name: "http_connection_timeout", Kind: Seconds, Description: "HTTP connection timeout."},
	{Name: "http_send_timeout", Kind: Seconds, Description: "HTTP send timeout"},
	{Name: "http_receive_timeout", Kind: Seconds, Description: "HTTP receive timeout"},
	{Name: "optimize_throw_if_noop", Kind: Boolean, Description: "If setting is enabled and OPTIMIZE query didn't actually assign a merge then an explanatory exception is thrown"},
	{Name: "use_index_for_in_with_subqueries", Kind: Boolean, Description: "Try using an index if there is a subquery or a table expression on the right side of the IN operator."},
	{Name: "empty_result_for_aggregation_by_empty_set", Kind: Boolean, Description: "Return empty result when aggregating without keys on empty set."},
	{Name: "allow_distributed_ddl", Kind: Boolean, Description: "If it is set to true, then a user is allowed to executed distributed DDL queries."},
	{Name: "odbc_max_field_size", Kind: Int64, Description: "Max size of filed can be read from ODBC dictionary. Long strings are truncated."},
	{Name: "max_rows_to_read", Kind: Int64, Description: "Limit on read rows from the most 'deep' sources. That is, only in the deepest subquery. When reading from a remote server, it is only checked on a remote server."},
	{Name: "max_bytes_to_read", Kind: Int64, Description: "Limit on read bytes (after decompression) from the most 'deep' sources. That is, only in the deepest subquery. When reading from a remote server, it is only checked on a remote server."},
	{Name: "max_result_rows", Kind: Int64, Description: "Limit on result size in rows. Also checked for intermediate data sent from remote servers."},
	{Name: "max_result_bytes", Kind: Int64, Description: "Limit on result size in bytes (uncompressed). Also checked for intermediate data sent from remote servers."},
	{Name: "min_execution_speed", Kind: Int64, Description: "In rows per second."},
	{Name: "timeout_before_checking_execution_speed", Kind: Seconds, Description: "Check that the speed is not too low after the specified time has elapsed."},
	{Name: "max_ast_depth", Kind: Int64, Description: "Maximum depth of query syntax tree. Checked after parsing."},
	{Name: "max_ast_elements", Kind: Int64, Description: "Maximum size of query syntax tree in number of nodes. Checked after parsing."},
	{Name: "max_expanded_ast_elements", Kind: Int64, Description: "Maximum size of query syntax tree in number of nodes after expansion of aliases and the asterisk."},
	{Name: "readonly", Kind: Int64, Description: "0 - everything is allowed. 1 - only read requests. 2 - only read requests, as well as changing settings, except for the 'readonly' setting."},
	{Name: "max_rows_in_set", Kind: Int64, Description: "Maximum size of the set (in number of elements) resulting from the execution of the IN section."},
	{Name: "max_bytes_in_set", Kind: Int64, Description: "Maximum size of the set (in bytes in memory) resulting from the execution of the IN section."},
	{Name: "max_rows_in_join", Kind: Int64, Description: "Maximum size of the hash table for JOIN (in number of rows)."},
	{Name: "max_bytes_in_join", Kind: Int64, Description: "Maximum size of the hash table for JOIN (in number of bytes in memory)."},
	{Name: "max_rows_to_transfer", Kind: Int64, Description: "Maximum size (in rows) of the transmitted external table obtained when the GLOBAL IN/JOIN section is executed."},
	{Name: "max_bytes_to_transfer", Kind: Int64, Description: "Maximum size (in uncompressed bytes) of the transmitted external table obtained when the GLOBAL IN/JOIN section is executed."},
	{Name: "max_rows_in_distinct", Kind: Int64, Description: "Maximum number of elements during execution of DISTINCT."},
	{Name: "max_bytes_in_distinct", Kind: Int64, Description: "Maximum total size of state (in uncompressed bytes) in memory for the execution of DISTINCT."},
	{Name: "max_memory_usage", Kind: Int64, Description: "Maximum memory usage for processing of single query. Zero means unlimited."},
	{Name: "max_memory_usage_for_user", Kind: Int64, Description: "Maximum memory usage for processing all concurrently running queries for the user. Zero means unlimited."},
	{Name: "max_memory_usage_for_all_queries", Kind: Int64, Description: "Maximum memory usage for processing all concurrently running queries on the server. Zero means unlimited."},
	{Name: "max_network_bandwidth", Kind: Int64, Description: "The maximum speed of data exchange over the network in bytes per second for a query. Zero means unlimited."},
	{Name: "max_network_bytes", Kind: Int64, Description: "The maximum number of bytes (compressed) to receive or transmit over the network for execution of the query."},
	{Name: "max_network_bandwidth_for_user", Kind: Int64, Description: "The maximum speed of data exchange over the network in bytes per second for all concurrently running user queries. Zero means unlimited."},
	{Name: "max_network_bandwidth_for_all_users", Kind: Int64, Description: "The maximum speed of data exchange over the network in bytes per second for all concurrently running queries. Zero means unlimited."},
	{Name: "format_csv_delimiter", Kind: Character, Description: "The character to be considered as a delimiter in CSV data. If setting with a string, a string has to have a length of 1."},
	{Name: "enable_conditional_computation", Kind: Int64, Description: "Enable conditional computations"},
	{Name: "port", Kind: Int32, ClientOnly: true},
	{Name: "user", Kind: String, ClientOnly: true},
	{Name: "address", Kind: String, ClientOnly: true},
	{Name: "database", Kind: String, ClientOnly: true},
	{Name: "password", Kind: String, ClientOnly: true},
	{Name: "query_timeout", Kind: Seconds, ClientOnly: true},
}
